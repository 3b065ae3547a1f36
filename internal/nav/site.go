package nav

// Icon identifiers understood by the theme.
const (
	IconZap      = "zap"
	IconCode     = "code"
	IconBook     = "book"
	IconFileText = "file-text"
)

// Site returns the compiled-in navigation of the Squirrel documentation.
func Site() *Model {
	return MustNew(
		Section{
			Title: "Getting Started",
			Icon:  IconZap,
			Items: []Item{
				&Leaf{Title: "Introduction", Target: "/docs"},
				&Leaf{Title: "Installation", Target: "/docs/getting-started"},
				&Leaf{Title: "Quick Start", Target: "/docs/quick-start"},
			},
		},
		Section{
			Title: "API Reference",
			Icon:  IconCode,
			Items: []Item{
				&Leaf{Title: "Overview", Target: "/docs/api"},
				&Group{
					Title: "Core Types",
					Children: []Item{
						&Leaf{Title: "Request", Target: "/docs/api/request"},
						&Leaf{Title: "Response", Target: "/docs/api/response"},
						&Leaf{Title: "SqurlMux", Target: "/docs/api/squrlmux"},
						&Leaf{Title: "HandlerFunc", Target: "/docs/api/handler"},
					},
				},
				&Group{
					Title: "Middleware",
					Children: []Item{
						&Leaf{Title: "Middleware Type", Target: "/docs/api/middleware"},
						&Leaf{Title: "Built-in Middleware", Target: "/docs/api/built-in-middleware"},
					},
				},
				&Group{
					Title: "Utilities",
					Children: []Item{
						&Leaf{Title: "Cookies", Target: "/docs/api/cookies"},
						&Leaf{Title: "Static Files", Target: "/docs/api/static"},
						&Leaf{Title: "Server Functions", Target: "/docs/api/functions"},
					},
				},
			},
		},
		Section{
			Title: "Guides",
			Icon:  IconBook,
			Items: []Item{
				&Leaf{Title: "Routing", Target: "/docs/guides/routing"},
				&Leaf{Title: "Middleware", Target: "/docs/guides/middleware"},
				&Leaf{Title: "Request Handling", Target: "/docs/guides/request-handling"},
				&Leaf{Title: "Response Management", Target: "/docs/guides/response-management"},
				&Leaf{Title: "Error Handling", Target: "/docs/guides/error-handling"},
				&Leaf{Title: "Static Files", Target: "/docs/guides/static-files"},
			},
		},
		Section{
			Title: "Examples",
			Icon:  IconFileText,
			Items: []Item{
				&Leaf{Title: "Basic Server", Target: "/docs/examples/basic-server"},
				&Leaf{Title: "REST API", Target: "/docs/examples/rest-api"},
				&Leaf{Title: "Middleware Usage", Target: "/docs/examples/middleware"},
				&Leaf{Title: "File Upload", Target: "/docs/examples/file-upload"},
			},
		},
	)
}
