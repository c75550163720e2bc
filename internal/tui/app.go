// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/app"
	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type appModel struct {
	ctx       context.Context
	ctrl      Controller
	changes   <-chan struct{}
	state     controller.State
	buildInfo models.BuildInfo

	generator generatorModel
	scanner   scannerModel
	spinner   spinner.Model

	showBuildInfo bool
	status        string

	copyText func(string) error
	openURL  func(string) error
}

func newAppModel(ctx context.Context, ctrl Controller, changes <-chan struct{}, buildInfo models.BuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		ctrl:      ctrl,
		changes:   changes,
		state:     ctrl.State(),
		buildInfo: buildInfo,
		generator: newGeneratorModel(),
		scanner:   newScannerModel(),
		spinner:   s,
		copyText:  clipboard.WriteAll,
		openURL:   openInBrowser,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		return m.updateKey(msg)

	case stateChangedMsg:
		m.state = m.ctrl.State()
		m.scanner = m.scanner.sync(m.state.Scanner)
		return m, m.waitForChange()

	case opDoneMsg:
		if msg.err != nil && m.state.View != controller.ShowingError {
			m.status = statusMessage(msg.err)
			return m, cmdClearStatus()
		}
		return m, nil

	case downloadedMsg:
		if msg.err != nil {
			m.status = statusMessage(msg.err)
		} else {
			m.status = "Saved to " + msg.path
		}
		return m, cmdClearStatus()

	case copiedMsg:
		m.status = "Copied!"
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		}
		return m, cmdClearStatus()

	case openedMsg:
		if msg.err != nil {
			m.status = "Open failed: " + msg.err.Error()
			return m, cmdClearStatus()
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.View {
	case controller.ShowingGenerator:
		return m.updateGenerator(msg)
	case controller.ShowingScanner:
		return m.updateScanner(msg)
	case controller.ShowingResult:
		return m.updateResult(msg)
	case controller.ShowingError:
		return m.updateError(msg)
	}
	return m, nil
}

func (m appModel) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.switchTab):
		return m, m.cmdSwitchTab(controller.TabScanner)
	case key.Matches(msg, keys.download):
		return m, m.cmdDownload()
	case key.Matches(msg, keys.generate), key.Matches(msg, keys.enter):
		return m, m.cmdOp("generate", m.ctrl.GenerateNow)
	case key.Matches(msg, keys.version) && m.generator.focused() == fieldTemplate:
		m.showBuildInfo = true
		return m, nil
	}

	var (
		ch  change
		cmd tea.Cmd
	)
	m.generator, ch, cmd = m.generator.update(msg)
	switch ch {
	case changeRequest:
		m.ctrl.UpdateRequest(m.generator.request())
	case changeOptions:
		m.ctrl.UpdateOptions(m.generator.options())
	}
	return m, cmd
}

func (m appModel) updateScanner(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.switchTab) {
		return m, m.cmdSwitchTab(controller.TabGenerator)
	}
	if key.Matches(msg, keys.tab) || key.Matches(msg, keys.backtab) {
		m.scanner = m.scanner.setZone(1 - m.scanner.zone)
		return m, nil
	}

	if m.scanner.zone == zoneFile {
		switch {
		case key.Matches(msg, keys.esc):
			m.scanner = m.scanner.setZone(zoneCameras)
			return m, nil
		case key.Matches(msg, keys.enter):
			path := strings.TrimSpace(m.scanner.path.Value())
			if path == "" {
				return m, nil
			}
			return m, m.cmdScanImage(path)
		}
		var cmd tea.Cmd
		m.scanner.path, cmd = m.scanner.path.Update(msg)
		return m, cmd
	}

	cameras := m.state.Scanner.Cameras
	switch {
	case key.Matches(msg, keys.esc):
		// closing the scanner returns to the generator
		return m, m.cmdSwitchTab(controller.TabGenerator)
	case key.Matches(msg, keys.up):
		m.scanner.cursor = max(m.scanner.cursor-1, 0)
	case key.Matches(msg, keys.down):
		m.scanner.cursor = min(m.scanner.cursor+1, max(len(cameras)-1, 0))
	case key.Matches(msg, keys.enter):
		if m.scanner.cursor < len(cameras) {
			return m, m.cmdSelectAndScan(cameras[m.scanner.cursor].ID)
		}
	case key.Matches(msg, keys.scan):
		if m.state.Scanner.Scanning {
			return m, m.cmdOp("stop", m.ctrl.StopScan)
		}
		return m, m.cmdOp("start", m.ctrl.StartScan)
	}
	return m, nil
}

func (m appModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := m.state.Result.Text
	switch {
	case key.Matches(msg, keys.copy):
		copyText := m.copyText
		return m, func() tea.Msg { return copiedMsg{err: copyText(text)} }
	case key.Matches(msg, keys.open) && m.state.Result.IsURL:
		openURL := m.openURL
		return m, func() tea.Msg { return openedMsg{err: openURL(text)} }
	case key.Matches(msg, keys.another), key.Matches(msg, keys.enter):
		return m, m.cmdOp("reset", m.ctrl.Reset)
	case key.Matches(msg, keys.esc):
		return m, m.cmdSwitchTab(controller.TabGenerator)
	}
	return m, nil
}

func (m appModel) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		// re-entering the scanner asks for camera access again
		if m.state.Entry == controller.TabScanner {
			return m, m.cmdSwitchTab(controller.TabScanner)
		}
		return m, m.cmdOp("reset", m.ctrl.Reset)
	case key.Matches(msg, keys.esc):
		return m, m.cmdSwitchTab(controller.TabGenerator)
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var page string
	switch m.state.View {
	case controller.ShowingGenerator:
		page = renderPage(m.tabs(), m.withStatus(m.generator.View(m.state.Generator, m.spinner.View())),
			"tab/shift+tab: move  ←/→: change  enter: generate  ctrl+d: download  ctrl+t: scanner  v: version (on template)")
	case controller.ShowingScanner:
		hotKeys := "s: start/stop  tab: camera/file  enter: select/scan  esc: close scanner"
		page = renderPage(m.tabs(), m.withStatus(m.scanner.View(m.state.Scanner, m.spinner.View())), hotKeys)
	case controller.ShowingResult:
		page = renderResultView(m.state.Result, m.status)
	case controller.ShowingError:
		page = renderErrorView(m.state)
	}
	return appStyle.Render(page)
}

func (m appModel) tabs() string {
	gen, scan := "Generate QR", "Scan QR"
	if m.state.Entry == controller.TabScanner {
		return helpStyle.Render(gen) + "  " + activeTabStyle.Render(scan)
	}
	return activeTabStyle.Render(gen) + "  " + helpStyle.Render(scan)
}

func (m appModel) withStatus(body string) string {
	if m.status == "" {
		return body
	}
	return body + "\n" + statusStyle.Render(m.status)
}

func (m appModel) waitForChange() tea.Cmd {
	ctx, changes := m.ctx, m.changes
	return func() tea.Msg {
		select {
		case <-changes:
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// cmdOp runs a blocking controller call off the UI loop. Its visible result
// arrives through the store; the message only carries the error.
func (m appModel) cmdOp(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m appModel) cmdSwitchTab(tab controller.Tab) tea.Cmd {
	ctrl := m.ctrl
	return m.cmdOp("switch", func(ctx context.Context) error {
		return ctrl.SwitchTab(ctx, tab)
	})
}

func (m appModel) cmdSelectAndScan(id string) tea.Cmd {
	ctrl := m.ctrl
	return m.cmdOp("start", func(ctx context.Context) error {
		if err := ctrl.SelectCamera(ctx, id); err != nil {
			return err
		}
		return ctrl.StartScan(ctx)
	})
}

func (m appModel) cmdScanImage(path string) tea.Cmd {
	ctrl := m.ctrl
	return m.cmdOp("image", func(ctx context.Context) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("error opening image: %w", err)
		}
		defer f.Close()

		ctrl.ScanImage(ctx, f)
		return nil
	})
}

func (m appModel) cmdDownload() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		path, err := ctrl.Download("")
		return downloadedMsg{path: path, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func statusMessage(err error) string {
	switch {
	case errors.Is(err, controller.ErrNothingToDownload), errors.Is(err, encoder.ErrEmptyPayload):
		return app.MsgNothingToEncode
	case errors.Is(err, encoder.ErrInvalidOptions):
		return app.MsgInvalidOptions
	case errors.Is(err, encoder.ErrEncodeFailed):
		return app.MsgEncodeFailed
	default:
		return err.Error()
	}
}
