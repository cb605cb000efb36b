package mcpx

// Host registration conventions, probed in a fixed priority order. Each
// convention is a small interface so a fake host implementing exactly one
// of them can exercise a single strategy in tests.

// RegisterCallHost accepts a direct register call with a description.
type RegisterCallHost interface {
	RegisterTool(name string, fn ToolFunc, description string) error
}

// RegisterCallShortHost is the reduced-arity register call, tried when the
// full-arity form is unavailable or rejects the call.
type RegisterCallShortHost interface {
	RegisterTool(name string, fn ToolFunc) error
}

// DecoratorHost hands out a registration function from (name, description).
type DecoratorHost interface {
	Tool(name, description string) func(ToolFunc) ToolFunc
}

// DecoratorShortHost is the reduced-arity decorator factory.
type DecoratorShortHost interface {
	Tool(name string) func(ToolFunc) ToolFunc
}

// ServerFactoryHost constructs a host-owned server object which carries its
// own registration convention.
type ServerFactoryHost interface {
	NewServer(name string) any
}

// BindStrategy attempts to bind one tool into a host using one calling
// convention. It reports whether the tool was registered.
type BindStrategy struct {
	Name string
	Bind func(b *hostBinding, tool Tool) bool
}

// bindStrategies is the fixed priority order. The first strategy that
// succeeds for a tool wins; later strategies are not attempted for it.
var bindStrategies = []BindStrategy{
	{Name: "register-call", Bind: bindRegisterCall},
	{Name: "decorator-factory", Bind: bindDecoratorFactory},
	{Name: "server-class", Bind: bindServerClass},
}

// hostBinding tracks per-host binding state: the candidate host itself and,
// when the server-class strategy fires, the server instance it created.
type hostBinding struct {
	registryName string
	host         any
	instance     any
}

func bindRegisterCall(b *hostBinding, tool Tool) bool {
	if host, ok := b.host.(RegisterCallHost); ok {
		if err := host.RegisterTool(tool.Name, tool.Func, tool.Description); err == nil {
			return true
		}
	}
	if host, ok := b.host.(RegisterCallShortHost); ok {
		if err := host.RegisterTool(tool.Name, tool.Func); err == nil {
			return true
		}
	}
	return false
}

func bindDecoratorFactory(b *hostBinding, tool Tool) bool {
	return decorate(b.host, tool)
}

func bindServerClass(b *hostBinding, tool Tool) bool {
	factory, ok := b.host.(ServerFactoryHost)
	if !ok {
		return false
	}
	if b.instance == nil {
		b.instance = factory.NewServer(b.registryName)
	}
	if b.instance == nil {
		return false
	}
	return decorate(b.instance, tool)
}

// decorate applies the decorator-factory convention against a target,
// preferring the full-arity form.
func decorate(target any, tool Tool) bool {
	if host, ok := target.(DecoratorHost); ok {
		if register := host.Tool(tool.Name, tool.Description); register != nil {
			register(tool.Func)
			return true
		}
	}
	if host, ok := target.(DecoratorShortHost); ok {
		if register := host.Tool(tool.Name); register != nil {
			register(tool.Func)
			return true
		}
	}
	return false
}
