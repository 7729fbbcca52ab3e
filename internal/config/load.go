package config

import "log/slog"

// Loader carries the collaborators a load needs: the logger warnings go to,
// and the level variable a log-level key adjusts. Both are optional; a zero
// Loader loads silently and leaves the log level alone.
type Loader struct {
	Log   *slog.Logger
	Level *slog.LevelVar
}

func (l *Loader) logger() *slog.Logger {
	if l.Log != nil {
		return l.Log
	}
	return slog.New(slog.DiscardHandler)
}

// Load locates and applies the configuration file, mutating opt in place.
// Only keys present in the document are written; everything else keeps the
// value the caller put there.
//
// The returned error is nil when no file exists and no explicit path was
// given (the caller runs on defaults). Otherwise it is one of the typed
// errors in this package: *UnreadableExplicitError, *ParseError (caller may
// continue on defaults), *EnumError, or *RuleError (caller must abort).
// A load is a single blocking call; the file is closed on every path.
func (l *Loader) Load(explicitPath string, opt *Options) (Result, error) {
	f, path, err := openConfigFile(explicitPath)
	if err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, nil
	}
	defer f.Close()

	doc, err := parseDocument(f, path)
	if err != nil {
		return Result{Path: path}, err
	}

	res := Result{Path: path, Loaded: true}
	for _, apply := range loadSteps {
		if err := apply(l, doc, opt, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}
