// Package convert drives formatting from the command line: it finds UTD
// documents in files, directories and zip archives, formats them and writes
// results.
package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"utdfmt/archive"
	"utdfmt/format"
	"utdfmt/layout"
	"utdfmt/linewrap"
	"utdfmt/misc"
	"utdfmt/state"
	"utdfmt/style"
	utdebug "utdfmt/utils/debug"
)

// progressStep is how often page progress is logged.
const progressStep = 100

// engine is everything formatting needs which does not change between
// documents of a single run.
type engine struct {
	settings layout.Settings
	styles   style.Resolver
	resumeAt string
}

// Run is action of format and resume commands.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	env.ResumeAt = cmd.String("at")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	eng, err := prepareEngine(env, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.String("resume_at", env.ResumeAt))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, eng, log)
}

func prepareEngine(env *state.LocalEnv, log *zap.Logger) (*engine, error) {
	w, err := linewrap.Load(env.Cfg.Engine.BrailleCode, env.Cfg.Engine.BreakRulesPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load line break rules: %w", err)
	}
	sheet, err := style.NewSheet(env.Cfg.Document.StylesheetPath, log)
	if err != nil {
		return nil, fmt.Errorf("unable to load stylesheet: %w", err)
	}
	return &engine{
		settings: layout.NewSettings(&env.Cfg.Engine, w),
		styles:   sheet,
		resumeAt: env.ResumeAt,
	}, nil
}

// process handles the core logic independently of CLI framework. It
// determines the input type (directory, archive, or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, eng *engine, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, eng, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, tail, "", dst, eng, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		doc, enc, err := isDocumentFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if doc && len(tail) == 0 {
			// encoding will be handled properly by processDocument
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to open file: %w", err)
			}
			defer file.Close()
			return processDocument(ctx, selectReader(file, enc), filepath.Base(head), dst, eng, log)
		}
		return fmt.Errorf("input was not recognized as UTD document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// stopping reports errors after which remaining documents are not processed.
func stopping(err error) bool {
	return errors.Is(err, format.ErrInterrupted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// processDir walks directory tree finding UTD files and processes them.
func processDir(ctx context.Context, dir, dst string, eng *engine, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, eng, log); err != nil {
				if stopping(err) {
					return err
				}
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		doc, enc, err := isDocumentFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !doc {
			log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, selectReader(file, enc), src, dst, eng, log); err != nil {
			if stopping(err) {
				return err
			}
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all files inside archive, finds UTD files under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, eng *engine, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	cp := state.EnvFromContext(ctx).CodePage

	err = archive.Walk(path, pathIn, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, enc, err := isDocumentInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !doc {
			log.Debug("Skipping file, not recognized as document", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := processDocument(ctx, selectReader(r, enc), filepath.Join(pathOut, pathInArchive), dst, eng, log); err != nil {
			if stopping(err) {
				return err
			}
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processDocument formats single UTD document. "src" is part of the source
// path (always including file name) relative to the original path. When
// actual file was specified it will be just base file name without a path.
// When looking inside archive or directory it will be relative path inside
// archive or directory (including base file name). "dst" is the destination
// directory where the formatted document should be written.
func processDocument(ctx context.Context, r io.Reader, src string, dst string, eng *engine, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var (
		outputName string
		res        *format.Result
	)

	log.Info("Formatting starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Formatting ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("formatting panic: %v", r)
		} else if rerr == nil {
			log.Info("Formatting completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName),
				zap.Int("pages", res.Pages), zap.Bool("partial", res.Partial))
		}
	}(time.Now())

	d, err := readDocument(ctx, r, src, log)
	if err != nil {
		return fmt.Errorf("unable to parse UTD source (%s): %w", src, err)
	}

	opts := format.Options{
		WriteUTD: env.Cfg.Document.WriteUTD,
		Progress: func(pages int) {
			if pages%progressStep == 0 {
				log.Debug("Formatting in progress", zap.String("from", src), zap.Int("pages", pages))
			}
		},
	}
	if env.Rpt != nil {
		opts.Trace = utdebug.NewTreeWriter()
	}

	if eng.resumeAt != "" {
		res, err = format.Resume(ctx, d.Tree(), eng.resumeAt, eng.settings, eng.styles, opts, log)
	} else {
		res, err = format.Format(ctx, d.Tree(), eng.settings, eng.styles, opts, log)
	}
	if err != nil {
		return fmt.Errorf("unable to format (%s): %w", src, err)
	}

	if env.Rpt != nil {
		name := fmt.Sprintf("%s/pages/%s.txt", misc.GetAppName(), filepath.Base(src))
		env.Rpt.StoreData(name, []byte(d.String()+"\n"+opts.Trace.String()))
	}

	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(d, res, src, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := d.writeDocument(outputName); err != nil {
		return err
	}

	// Store formatting result for debugging
	if err := env.Rpt.StoreCopy(fmt.Sprintf("%s/result/%s", misc.GetAppName(), filepath.Base(outputName)), outputName); err != nil {
		log.Warn("Unable to store result in debug report", zap.Error(err))
	}
	return nil
}
