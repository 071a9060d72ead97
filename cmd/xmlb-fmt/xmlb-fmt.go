package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmlb"
	"github.com/lestrrat-go/xmlb/internal/cliutil"
)

type cmdopts struct {
	Indent   int    `long:"indent" default:"2"`
	NoIndent bool   `long:"noindent"`
	NoDecl   bool   `long:"nodecl"`
	Encoding string `long:"encoding" default:"utf-8"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmlb-fmt: using xmlb version %s\n", xmlb.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmlb-fmt [options] XMLfiles ...
	Parse the XML files and print them reformatted
	--indent=N   : indent using N spaces per level (default 2)
	--noindent   : do not pretty print
	--nodecl     : omit the XML declaration
	--encoding=E : output character encoding
	--version    : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	outputOptions := []xmlb.OutputOption{
		xmlb.WithIndent(opts.Indent),
		xmlb.WithOmitDeclaration(opts.NoDecl),
		xmlb.WithEncoding(opts.Encoding),
	}
	if opts.NoIndent {
		outputOptions[0] = xmlb.WithIndent(xmlb.NoIndent)
	}

	inputCh := make(chan io.Reader)
	// buffered so the producer can park its error and release the
	// deferred close(inputCh) instead of deadlocking against the
	// consumer loop below
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	for in := range inputCh {
		doc, err := xmlb.ParseReader(ctx, in)
		if cl, ok := in.(io.Closer); ok && cl != os.Stdin {
			cl.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if _, err := doc.WriteTo(os.Stdout, outputOptions...); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}
