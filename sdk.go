package sdk

import (
	"github.com/google/uuid"
	wapc "github.com/wapc/wapc-guest-tinygo"

	"github.com/hostbridge-project/sdk/execctx"
	"github.com/hostbridge-project/sdk/panics"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "hostbridge"

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace controls the function namespace to use for host callbacks.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Handler is the function to be registered as the main guest entry
	// point. Every invocation runs inside an execution context scope, so log
	// records emitted at any call depth are attributed to that invocation.
	Handler func([]byte) ([]byte, error)

	// ContextToken overrides how the per-invocation context token is
	// produced. Hosts that pass their own invocation handles can surface
	// them here; the default mints a random identifier.
	ContextToken func() string
}

// RuntimeConfig carries configuration that is used during creation of SDK components.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	Namespace string
}

// SDK represents the initialized runtime with a registered waPC handler.
type SDK struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig

	// handler is the guest function invoked inside the context scope.
	handler func([]byte) ([]byte, error)

	// contextToken produces the token attached to each invocation context.
	contextToken func() string
}

// New initializes the SDK and registers the wrapped handler with waPC.
func New(config Config) (*SDK, error) {
	// Validate Handler is not empty
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	// Create runtime configuration with defaults
	cfg := RuntimeConfig{Namespace: DefaultNamespace}

	// Override defaults with provided configuration
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	token := config.ContextToken
	if token == nil {
		token = uuid.NewString
	}

	// Create SDK instance
	sdk := &SDK{
		runtime:      cfg,
		handler:      config.Handler,
		contextToken: token,
	}

	// Register the invocation wrapper with waPC
	wapc.RegisterFunction("handler", sdk.invoke)

	return sdk, nil
}

// invoke runs one host invocation of the guest handler inside an execution
// context scope. The guard release is deferred first so the panic notifier,
// deferred after it, still sees the context while reporting; the context is
// popped on every exit path.
func (s *SDK) invoke(payload []byte) ([]byte, error) {
	guard := execctx.Enter(execctx.New(s.contextToken()))
	defer guard.Release()
	defer panics.Notify()

	return s.handler(payload)
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }
