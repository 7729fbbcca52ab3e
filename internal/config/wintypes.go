package config

// winTypeStep reads the wintypes.<category> sections. Categories without a
// section are left entirely untouched; within a section each field is probed
// independently, so a config can set only fade for tooltips and nothing else.
func winTypeStep(_ *Loader, doc *document, opt *Options, _ *Result) error {
	for wt := WinType(0); wt < NumWinTypes; wt++ {
		section, ok := doc.section("wintypes." + wt.String())
		if !ok {
			continue
		}
		o := &opt.WinTypeOptions[wt]
		if v, ok := section.lookupBool("shadow"); ok {
			o.Shadow.Set(v)
		}
		if v, ok := section.lookupBool("fade"); ok {
			o.Fade.Set(v)
		}
		if v, ok := section.lookupBool("focus"); ok {
			o.Focus.Set(v)
		}
		if v, ok := section.lookupBool("full-shadow"); ok {
			o.FullShadow.Set(v)
		}
		if v, ok := section.lookupBool("redir-ignore"); ok {
			o.RedirIgnore.Set(v)
		}
		if v, ok := section.lookupFloat("opacity"); ok {
			// Clamped but not scaled by Opaque; the renderer scales when
			// merging overrides with the global opacity options.
			o.Opacity.Set(clampUnit(v))
		}
	}
	return nil
}
