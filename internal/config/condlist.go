package config

import (
	"fmt"
	"strconv"
	"strings"

	"veil/internal/cond"
	"veil/internal/render"
)

// condListOption reads one of the plain condition-list keys. The key may
// hold a single string or an array of strings; both fill the same list,
// array order preserved. Entries the pattern parser rejects are dropped
// without failing the load, only logged at debug so the drop is traceable.
func condListOption(key string, list func(*Options) *[]*cond.Pattern) step {
	return func(l *Loader, doc *document, opt *Options, _ *Result) error {
		entries, ok := doc.stringList(key)
		if !ok {
			return nil
		}
		dst := list(opt)
		for _, entry := range entries {
			pattern, err := cond.Parse(entry)
			if err != nil {
				l.logger().Debug("dropping unparseable condition", "key", key, "error", err)
				continue
			}
			*dst = append(*dst, pattern)
		}
		return nil
	}
}

// opacityRuleStep parses opacity-rule entries of the form "NN:condition".
// Unlike the plain lists, any malformed entry aborts the load: an opacity
// rule silently not applying is considered too dangerous.
func opacityRuleStep(_ *Loader, doc *document, opt *Options, _ *Result) error {
	entries, ok := doc.stringList("opacity-rule")
	if !ok {
		return nil
	}
	for _, entry := range entries {
		rule, err := parseOpacityRule(entry)
		if err != nil {
			return &RuleError{Key: "opacity-rule", Entry: entry, Err: err}
		}
		opt.OpacityRules = append(opt.OpacityRules, rule)
	}
	return nil
}

func parseOpacityRule(entry string) (OpacityRule, error) {
	sep := strings.IndexByte(entry, ':')
	if sep < 0 {
		return OpacityRule{}, fmt.Errorf("expected \"opacity:condition\"")
	}
	opacity, err := strconv.Atoi(strings.TrimSpace(entry[:sep]))
	if err != nil {
		return OpacityRule{}, fmt.Errorf("bad opacity: %w", err)
	}
	if opacity < 0 || opacity > 100 {
		return OpacityRule{}, fmt.Errorf("opacity %d out of range 0..100", opacity)
	}
	pattern, err := cond.Parse(entry[sep+1:])
	if err != nil {
		return OpacityRule{}, err
	}
	return OpacityRule{Opacity: opacity, Pattern: pattern}, nil
}

// blurKernStep parses the blur-kern kernel chain. Parse failure is fatal;
// the negative-weight flag is surfaced on the Result for the renderer.
func blurKernStep(_ *Loader, doc *document, opt *Options, res *Result) error {
	s, ok := doc.lookupString("blur-kern")
	if !ok {
		return nil
	}
	kernels, hasNeg, err := render.ParseKernelList(s)
	if err != nil {
		return &RuleError{Key: "blur-kern", Entry: s, Err: err}
	}
	opt.BlurKernels = kernels
	res.KernelsHaveNegative = hasNeg
	return nil
}
