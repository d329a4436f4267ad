// Package avtoolbox calculates audio-visual production figures and renders
// the articles and graphics that go with them.
//
// # Quick Start
//
// Create a toolbox, run a calculator, and close when done:
//
//	tb, err := avtoolbox.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tb.Close()
//
//	res, err := tb.CalculateSlug(ctx, "stream-delay", avtoolbox.Params{
//	    "encoder": "200",
//	    "buffer":  "4",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range res.Fields {
//	    fmt.Println(f.Label, f)
//	}
//
// # Calculators
//
// Ten tools are available, identified by their slug with or without the
// trailing "-calculator" style suffix:
//
//	stream-delay      glass-to-glass live stream latency
//	bitrate           encode bitrate and upload speed, or a full ladder
//	safe-area         action-safe and title-safe zones
//	rtmp-url          ingest URL for a platform and stream key
//	countdown         HH:MM:SS durations for countdown overlays
//	lower-third       caption template, text and accent color
//	audio-delay       sound propagation and lip sync
//	aspect-ratio      reduced ratio, nearest standard and resizing
//	cable-length      cable run checks and room routing estimates
//	speaker-coverage  single speaker throw and ceiling speaker grids
//
// Parameters are text, exactly as typed on a command line. Missing
// parameters take the tool's defaults. Tools with several variants take a
// "mode" parameter. Rejected parameters return an error wrapping
// ErrInvalidInput; unknown tools return a result whose Available field is
// false.
//
// Stream keys are masked in results. Call Result.RevealSecrets to show them.
//
// # Articles
//
// RenderPost renders an embedded blog post into a standalone HTML page with
// a link card to its tool. RenderMarkdown does the same for any markdown
// document, reading title and metadata from optional YAML front matter:
//
//	art, err := tb.RenderMarkdown(ctx, content, avtoolbox.ArticleOptions{
//	    Engine:   avtoolbox.EngineGFM,
//	    Style:    "dark",
//	    TOCTitle: "Contents",
//	})
//
// The lite engine renders the small dialect used by the blog: "## " and
// "### " headings, lists, pipe tables, bold, italic and inline code. The
// gfm engine renders GitHub flavored markdown with syntax highlighting.
//
// # Graphics
//
// ExportLowerThird and ExportSafeArea take the same parameters as their
// calculators and produce SVG, or PNG through headless Chrome:
//
//	out, err := tb.ExportSafeArea(ctx, avtoolbox.Params{"frame": "4k"}, avtoolbox.FormatPNG)
//	os.WriteFile("safe-area.png", out.Data, 0o644)
//
// The browser starts on the first PNG export and stops on Close. Set
// ROD_BROWSER_BIN to choose the Chrome binary and ROD_NO_SANDBOX=1 to run
// it without the sandbox in containers.
//
// # Custom Assets
//
// WithAssetsDir overlays styles and templates on the embedded ones:
//
//	assets/
//	├── styles/
//	│   └── brand.css
//	└── templates/
//	    └── default/
//	        ├── page.html
//	        └── related.html
//
// # Error Handling
//
// Errors can be checked with errors.Is:
//
//	if errors.Is(err, avtoolbox.ErrInvalidInput) {
//	    // bad calculator parameter
//	}
//	var pe *avtoolbox.ParamError
//	if errors.As(err, &pe) {
//	    fmt.Println("check", pe.Field)
//	}
package avtoolbox
