package mockworkspace

import (
	"net/http"
	"time"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	GraphQLPath string
	InitPath    string

	WorkspaceID   string
	WorkspaceName string

	// Token, when set, requires an "Authorization: Bearer <token>" header on
	// every request.
	Token string

	Guard GuardFunc

	// FailureMessage, when set, makes the GraphQL endpoint answer every query
	// with an errors envelope instead of data.
	FailureMessage string

	// Latency delays every GraphQL response, for exercising timeouts and
	// loading states. The request context cancels the wait.
	Latency time.Duration

	Applications []Application

	// Translations maps locale to message key to label.
	Translations map[string]map[string]string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		GraphQLPath:   "/graphql",
		InitPath:      "/api/init",
		WorkspaceID:   "ws-demo",
		WorkspaceName: "Demo Workspace",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.GraphQLPath == "" {
		opts.GraphQLPath = "/graphql"
	}
	if opts.InitPath == "" {
		opts.InitPath = "/api/init"
	}
	if opts.WorkspaceID == "" {
		opts.WorkspaceID = "ws-demo"
	}
	if opts.WorkspaceName == "" {
		opts.WorkspaceName = "Demo Workspace"
	}
	if opts.Applications != nil {
		opts.Applications = append([]Application{}, opts.Applications...)
	}
	return opts
}

func WithGraphQLPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.GraphQLPath = path
	}
}

func WithInitPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.InitPath = path
	}
}

func WithWorkspace(id, name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.WorkspaceID = id
		o.WorkspaceName = name
	}
}

func WithToken(token string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Token = token
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithFailure(message string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FailureMessage = message
	}
}

func WithLatency(latency time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Latency = latency
	}
}

func WithApplications(apps []Application) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if apps == nil {
			o.Applications = nil
			return
		}
		o.Applications = append([]Application{}, apps...)
	}
}

func WithTranslations(translations map[string]map[string]string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translations = translations
	}
}
