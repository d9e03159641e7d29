package loader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mosberg/alchemy/internal/catalog"
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/effects"
	"github.com/mosberg/alchemy/internal/logger"
	"github.com/mosberg/alchemy/internal/metrics"
	"github.com/mosberg/alchemy/internal/resolve"
	"github.com/mosberg/alchemy/internal/schema"
	"github.com/mosberg/alchemy/internal/validation"
)

// FileError reports one rejected content file. It wraps exactly one of the
// domain document sentinels.
type FileError = domain.DocumentError

// Result is the outcome of one load. Catalog is never nil.
type Result struct {
	LoadID    string
	Catalog   *catalog.Catalog
	Attempted map[domain.Kind]int // files read per kind
	Loaded    map[domain.Kind]int // files accepted per kind, duplicates included
	Errors    []*FileError
	Warnings  []string
	Digest    string // sha256 over every file read, in scan order
	Duration  time.Duration
}

// OK reports whether every attempted file was accepted
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// ErrorsOf returns the errors for one kind, in scan order
func (r *Result) ErrorsOf(kind domain.Kind) []*FileError {
	var out []*FileError
	for _, e := range r.Errors {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Option configures a load
type Option func(*options)

type options struct {
	effects validation.EffectRegistry
	log     *slog.Logger
	shapes  validation.SchemaValidator
}

// WithEffectRegistry checks beverage effects against reg instead of the
// vanilla effect list
func WithEffectRegistry(reg validation.EffectRegistry) Option {
	return func(o *options) {
		o.effects = reg
	}
}

// WithLogger sets the logger used for the load
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithSchemaValidator replaces the reflected shape validator
func WithSchemaValidator(v validation.SchemaValidator) Option {
	return func(o *options) {
		o.shapes = v
	}
}

// defaultShapes compiles the reflected schemas once per process
var defaultShapes = sync.OnceValues(validation.NewSchemaValidator)

// Load scans root and builds a catalog from every document that parses and
// validates. One bad file never blocks the others.
func Load(ctx context.Context, root string, opts ...Option) *Result {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.effects == nil {
		o.effects = effects.Vanilla()
	}

	l := &load{
		root:      root,
		validator: validation.NewValidator(o.effects),
		shapes:    o.shapes,
		builder:   catalog.NewBuilder(),
		digest:    sha256.New(),
		result: &Result{
			LoadID:    logger.GenerateLoadID(),
			Attempted: make(map[domain.Kind]int, len(domain.Kinds)),
			Loaded:    make(map[domain.Kind]int, len(domain.Kinds)),
		},
	}

	ctx = logger.WithLoadID(ctx, l.result.LoadID)
	l.log = logger.FromContext(ctx, o.log)

	if l.shapes == nil {
		shapes, err := defaultShapes()
		if err != nil {
			l.warn(fmt.Sprintf(WarnFmtSchemaUnavailable, err))
		} else {
			l.shapes = shapes
		}
	}

	start := time.Now()
	l.log.Info(LogMsgLoadStarted, "root", root)
	l.run(ctx)

	l.result.Catalog = l.builder.Build()
	for _, def := range resolve.NewResolver(l.result.Catalog).Unresolved() {
		l.warn(fmt.Sprintf(WarnFmtUnresolved, def.ID, def.Container))
	}

	l.result.Digest = hex.EncodeToString(l.digest.Sum(nil))
	l.result.Duration = time.Since(start)
	metrics.LoadDuration.Observe(l.result.Duration.Seconds())

	counts := l.result.Catalog.Counts()
	l.log.Info(LogMsgLoadCompleted,
		"beverages", counts.Beverages,
		"containers", counts.Containers,
		"equipment", counts.Equipment,
		"errors", len(l.result.Errors),
		"warnings", len(l.result.Warnings),
		"duration", l.result.Duration)

	return l.result
}

// load is the state of one Load call
type load struct {
	root      string
	log       *slog.Logger
	validator *validation.Validator
	shapes    validation.SchemaValidator
	builder   *catalog.Builder
	digest    hash.Hash
	files     int
	result    *Result
}

func (l *load) run(ctx context.Context) {
	info, err := os.Stat(l.root)
	if err != nil {
		l.warn(fmt.Sprintf(WarnFmtRootUnreadable, l.root, err))
		return
	}
	if !info.IsDir() {
		l.warn(fmt.Sprintf(WarnFmtRootNotDir, l.root))
		return
	}

	for _, kind := range domain.Kinds {
		paths := l.scan(kind)
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				l.warn(fmt.Sprintf(WarnFmtCancelled, l.files, err))
				return
			}
			l.loadFile(kind, path)
		}
	}
}

// scan lists the kind's documents in lexical order. A missing directory is
// not an error.
func (l *load) scan(kind domain.Kind) []string {
	dir := filepath.Join(l.root, kind.Dir())
	if _, err := os.Stat(dir); err != nil {
		l.log.Debug(LogMsgKindDirMissing, "kind", kind.String(), "dir", dir)
		return nil
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.warn(fmt.Sprintf(WarnFmtWalkFailed, path, err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ContentExt) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		l.warn(fmt.Sprintf(WarnFmtWalkFailed, dir, err))
	}
	return paths
}

func (l *load) loadFile(kind domain.Kind, path string) {
	l.files++
	l.result.Attempted[kind]++
	rel := l.relative(path)

	data, err := os.ReadFile(path)
	if err != nil {
		l.reject(&FileError{
			Path: rel,
			Kind: kind,
			Err:  fmt.Errorf("%w: %s", domain.ErrMalformedDocument, fmt.Sprintf(ErrFmtReadFailed, err)),
		})
		return
	}
	l.digest.Write([]byte(rel))
	l.digest.Write(data)

	if l.shapes != nil {
		if err := l.shapes.ValidateBytes(kind, rel, data); err != nil {
			l.reject(err)
			return
		}
	}

	if err := l.accept(kind, rel, data); err != nil {
		l.reject(err)
		return
	}

	l.result.Loaded[kind]++
	metrics.DefinitionsLoaded.WithLabelValues(kind.String()).Inc()
	l.log.Debug(LogMsgFileLoaded, "kind", kind.String(), "path", rel)
}

// accept parses, validates and stores one document
func (l *load) accept(kind domain.Kind, path string, data []byte) error {
	switch kind {
	case domain.KindBeverage:
		parsed, err := schema.ParseBeverage(path, data)
		if err != nil {
			return err
		}
		if err := l.validator.ValidateBeverage(parsed); err != nil {
			return err
		}
		l.builder.AddBeverage(parsed.Definition)

	case domain.KindContainer:
		parsed, err := schema.ParseContainer(path, data)
		if err != nil {
			return err
		}
		if err := l.validator.ValidateContainer(parsed); err != nil {
			return err
		}
		l.builder.AddContainer(resolve.DeriveContainerBlock(parsed.Definition))

	case domain.KindEquipment:
		parsed, err := schema.ParseEquipment(path, data)
		if err != nil {
			return err
		}
		if err := l.validator.ValidateEquipment(parsed); err != nil {
			return err
		}
		l.builder.AddEquipment(resolve.DeriveEquipmentBlock(parsed.Definition))
	}
	return nil
}

func (l *load) reject(err error) {
	fileErr, ok := err.(*FileError)
	if !ok {
		fileErr = &FileError{Err: fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)}
	}
	l.result.Errors = append(l.result.Errors, fileErr)
	metrics.LoadErrors.WithLabelValues(fileErr.Kind.String(), fileErr.ErrorKind()).Inc()
	l.log.Warn(LogMsgFileRejected,
		"kind", fileErr.Kind.String(),
		"path", fileErr.Path,
		"field", fileErr.Field,
		"error_kind", fileErr.ErrorKind(),
		"error", fileErr.Err)
}

func (l *load) warn(msg string) {
	l.result.Warnings = append(l.result.Warnings, msg)
	metrics.LoadWarnings.Inc()
	l.log.Warn(LogMsgLoadWarning, "warning", msg)
}

// relative returns path relative to the root with forward slashes
func (l *load) relative(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
