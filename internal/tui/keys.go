// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	switchTab key.Binding
	generate  key.Binding
	download  key.Binding
	version   key.Binding
	scan      key.Binding
	copy      key.Binding
	open      key.Binding
	another   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	switchTab: key.NewBinding(key.WithKeys("ctrl+t")),
	generate:  key.NewBinding(key.WithKeys("ctrl+g")),
	download:  key.NewBinding(key.WithKeys("ctrl+d")),
	version:   key.NewBinding(key.WithKeys("v")),
	scan:      key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	open:      key.NewBinding(key.WithKeys("o")),
	another:   key.NewBinding(key.WithKeys("n")),
}
