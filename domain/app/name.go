package app

// Name is the application name used in logs and usage output.
const Name = "labbot"
