package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/topus-dev/topus/pkg/document"
	"github.com/topus-dev/topus/pkg/output"
	"github.com/topus-dev/topus/pkg/page"
	"github.com/topus-dev/topus/pkg/render"
)

func buildCmd(flags *globalFlags) *cobra.Command {
	var (
		dest  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "build [page.yaml]",
		Short: "Render a page and write it out",
		Long: `Render a page file, or the default document when no file is
given, and write it to a file or an S3 object.

The destination defaults to output.dir/output.file from topus.json.
With s3.bucket configured, "s3:key" is short for s3://bucket/key.

Examples:
  topus build
  topus build page.yaml
  topus build page.yaml -o public/index.html
  topus build page.yaml -o s3://my-site/index.html
  topus build --title "Coming soon"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pagePath := ""
			if len(args) == 1 {
				pagePath = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runBuild(ctx, cmd, flags, pagePath, dest, title)
		},
	}

	cmd.Flags().StringVarP(&dest, "output", "o", "", "Destination file or s3://bucket/key (default from topus.json)")
	cmd.Flags().StringVar(&title, "title", "", "Document title (overrides the page file)")

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, flags *globalFlags, pagePath, dest, title string) error {
	e, err := flags.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(render.RendererConfig{
		Logger:   e.logger,
		Observer: e.metrics,
	})

	var b strings.Builder
	if pagePath != "" {
		p, err := page.Load(pagePath)
		if err != nil {
			return err
		}
		if title != "" {
			p.Title = title
		}
		html, err := p.Render(ctx, renderer)
		if err != nil {
			return err
		}
		b.WriteString(html)
	} else {
		if title == "" {
			title = document.DefaultTitle
		}
		if err := renderer.RenderDocument(ctx, &b, document.New(title)); err != nil {
			return err
		}
	}

	mode, err := e.cfg.FileMode()
	if err != nil {
		return err
	}
	opts := output.Options{
		FileMode: mode,
		S3Prefix: e.cfg.S3.Prefix,
		Logger:   e.logger,
		Observer: e.metrics,
	}

	target := e.cfg.Destination(dest)
	if strings.HasPrefix(target, "s3://") {
		opts.S3Client = output.NewS3Client(output.S3ClientOptions{
			Region:    e.cfg.S3.Region,
			Endpoint:  e.cfg.S3.Endpoint,
			PathStyle: e.cfg.S3.PathStyle,
		})
	}

	if err := output.Write(ctx, target, []byte(b.String()), opts); err != nil {
		return err
	}

	success(cmd.OutOrStdout(), "successfully wrote to %s (%s)", target, formatBytes(int64(b.Len())))
	return nil
}
