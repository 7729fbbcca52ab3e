package config

// Backward compatibility for renamed and removed options. Nothing here ever
// fails the load; outcomes are warnings plus best-effort migration.

// noDockShadowShim migrates the retired no-dock-shadow key onto the dock
// window type's shadow override, explicit flag included, so old configs keep
// their behavior.
func noDockShadowShim(l *Loader, doc *document, opt *Options, _ *Result) error {
	if _, ok := doc.lookupBool("no-dock-shadow"); !ok {
		return nil
	}
	l.logger().Warn("option `no-dock-shadow` is deprecated, and will be removed;" +
		" use the wintype option `shadow` of `dock` instead")
	opt.WinTypeOptions[WinTypeDock].Shadow.Set(false)
	return nil
}

// noDnDShadowShim is the dnd counterpart of noDockShadowShim.
func noDnDShadowShim(l *Loader, doc *document, opt *Options, _ *Result) error {
	if _, ok := doc.lookupBool("no-dnd-shadow"); !ok {
		return nil
	}
	l.logger().Warn("option `no-dnd-shadow` is deprecated, and will be removed;" +
		" use the wintype option `shadow` of `dnd` instead")
	opt.WinTypeOptions[WinTypeDND].Shadow.Set(false)
	return nil
}

// menuOpacityShim maps the retired menu-opacity key onto both menu window
// types. The value lands unscaled, matching wintype opacity semantics.
func menuOpacityShim(l *Loader, doc *document, opt *Options, _ *Result) error {
	v, ok := doc.lookupFloat("menu-opacity")
	if !ok {
		return nil
	}
	l.logger().Warn("option `menu-opacity` is deprecated, and will be removed;" +
		" use the wintype option `opacity` of `popup_menu` and `dropdown_menu` instead")
	opt.WinTypeOptions[WinTypeDropdownMenu].Opacity.Set(clampUnit(v))
	opt.WinTypeOptions[WinTypePopupMenu].Opacity.Set(clampUnit(v))
	return nil
}

// removedKeysShim warns about options that no longer do anything. The last
// two only warn when enabled; disabling a removed optimization is harmless.
func removedKeysShim(l *Loader, doc *document, _ *Options, _ *Result) error {
	log := l.logger()
	if _, ok := doc.lookupBool("clear-shadow"); ok {
		log.Warn("`clear-shadow` is removed as an option, and is always enabled now;" +
			" consider removing it from your config file")
	}
	if _, ok := doc.lookupBool("paint-on-overlay"); ok {
		log.Warn("`paint-on-overlay` has been removed as an option, and is enabled whenever possible")
	}
	if _, ok := doc.lookupFloat("alpha-step"); ok {
		log.Warn("`alpha-step` has been removed, veil now tries to make use of all alpha values")
	}
	const removed = "has been removed; if you encounter problems without this feature," +
		" please feel free to open a bug report"
	if v, ok := doc.lookupBool("glx-use-copysubbuffermesa"); ok && v {
		log.Warn("`glx-use-copysubbuffermesa` " + removed)
	}
	if v, ok := doc.lookupBool("glx-copy-from-front"); ok && v {
		log.Warn("`glx-copy-from-front` " + removed)
	}
	return nil
}
