package crm

import "context"

// Invoker calls a named CRM custom action.
// Implementations are safe for concurrent use.
type Invoker interface {
	// Invoke posts inputs to the action and returns the raw response.
	Invoke(ctx context.Context, action string, inputs map[string]any) (*Result, error)
}

// Ensure Client implements Invoker interface
var _ Invoker = (*Client)(nil)

// New creates a CRM client with the given configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(ctx, cfg), nil
}
