package presentation

import "fmt"

// KeygenRunner performs one key-rotation exchange and exits.
type KeygenRunner struct {
	deps ClientAppDependencies
}

func NewKeygenRunner(deps ClientAppDependencies) *KeygenRunner {
	return &KeygenRunner{
		deps: deps,
	}
}

func (r *KeygenRunner) Run() error {
	if err := r.deps.Client().RotateKey(); err != nil {
		return fmt.Errorf("keygen request failed: %w", err)
	}

	fmt.Printf("new pre-shared key written to %s\n", r.deps.Configuration().Control.KeyFilePath)
	return nil
}
