package explore

import (
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

// Option configures optional behavior of an Explorer.
type Option func(*options)

type options struct {
	httpClient  ports.HTTPClient
	logger      log.Logger
	handler     EventHandler
	plugins     []Plugin
	boundary    ports.BoundaryService
	frontier    ports.FrontierService
	navigator   ports.Navigator
	transformer ports.PoseTransformer
	localizer   ports.Localizer
	recorder    ports.MissionRecorder
}

// WithHTTPClient sets a custom HTTP client for collaborator communication.
// If not provided, a default client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) { o.httpClient = client }
}

// WithLogger sets the structured logger. The default discards all output.
func WithLogger(logger Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithEventHandler sets a handler for phase changes and mission completion.
// Events are called synchronously from the mission goroutine.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) { o.handler = handler }
}

// WithPlugin registers a plugin, initialized on Start in registration order
// and shut down in reverse order on Close.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) { o.plugins = append(o.plugins, plugin) }
}

// WithBoundaryService injects a boundary service, replacing the HTTP client
// built from Config.BoundaryURL.
func WithBoundaryService(svc BoundaryService) Option {
	return func(o *options) { o.boundary = svc }
}

// WithFrontierService injects a frontier service.
func WithFrontierService(svc FrontierService) Option {
	return func(o *options) { o.frontier = svc }
}

// WithNavigator injects a navigation executor.
func WithNavigator(nav Navigator) Option {
	return func(o *options) { o.navigator = nav }
}

// WithPoseTransformer injects a pose transformer.
func WithPoseTransformer(tf PoseTransformer) Option {
	return func(o *options) { o.transformer = tf }
}

// WithLocalizer injects a localization source.
func WithLocalizer(l Localizer) Option {
	return func(o *options) { o.localizer = l }
}

// WithRecorder injects a mission recorder, replacing the SQLite store built
// from Config.StorePath.
func WithRecorder(r MissionRecorder) Option {
	return func(o *options) { o.recorder = r }
}
