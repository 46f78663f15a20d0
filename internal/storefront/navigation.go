package storefront

import "context"

// NavigateTo activates section and dispatches its entry hooks. It reports
// whether the section was activated; calls made while a navigation is in
// progress, or while the same section's hooks run, are ignored.
func (a *App) NavigateTo(ctx context.Context, section Section) bool {
	a.mu.Lock()
	nav := &a.state.Nav
	if nav.phase == navNavigating || nav.entering[section] > 0 {
		a.mu.Unlock()
		return false
	}
	nav.phase = navNavigating
	menuWasOpen := nav.MenuOpen
	nav.MenuOpen = false
	known := knownSections[section]
	if known {
		nav.Active = section
	}
	a.mu.Unlock()

	if menuWasOpen {
		a.view.RenderMenu(false)
	}
	if known {
		a.view.ShowSection(section)
	}

	a.mu.Lock()
	nav.phase = navIdle
	if known {
		nav.entering[section]++
	}
	a.mu.Unlock()

	if !known {
		return false
	}

	a.enterSection(ctx, section)

	a.mu.Lock()
	nav.entering[section]--
	if nav.entering[section] <= 0 {
		delete(nav.entering, section)
	}
	a.mu.Unlock()
	return true
}

func (a *App) enterSection(ctx context.Context, section Section) {
	switch section {
	case SectionCart:
		a.renderCart()
	case SectionWishlist:
		a.renderWishlist()
	case SectionOrders:
		_ = a.LoadOrders(ctx)
	}
}

// ToggleMobileMenu opens or closes the navigation overlay
func (a *App) ToggleMobileMenu() bool {
	a.mu.Lock()
	a.state.Nav.MenuOpen = !a.state.Nav.MenuOpen
	open := a.state.Nav.MenuOpen
	a.mu.Unlock()

	a.view.RenderMenu(open)
	return open
}
