// Package swiftcss generates a utility-class stylesheet from the class tokens
// found in a project's markup and script files.
//
// swiftcss scans attributes such as class, className, style-dark and
// style-<breakpoint>, resolves every token against a built-in utility
// stylesheet or an inline value like bg-[#000], and writes one CSS file.
//
// # Building
//
//	cfg := swiftcss.DefaultConfig()
//	cfg.Directories = []string{"./web"}
//	c, err := swiftcss.New(cfg)
//	if err != nil {
//		return err
//	}
//	result, err := c.Run(ctx, swiftcss.ModeBuild)
//
// # Watching
//
// Watch reruns the pipeline whenever a scanned file changes:
//
//	err = c.Watch(ctx, swiftcss.ModeDev, func(r *swiftcss.Result, err error) { ... })
//
// # CLI Tool
//
//	go install github.com/yacobolo/swiftcss/cmd/swiftcss@latest
package swiftcss
