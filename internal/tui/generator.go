// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type genField int

const (
	fieldTemplate genField = iota
	fieldText
	fieldURL
	fieldSSID
	fieldPassword
	fieldEncryption
	fieldName
	fieldEmail
	fieldPhone
	fieldModuleColor
	fieldBackgroundColor
	fieldSize

	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTemplate:        "Template",
	fieldText:            "Text",
	fieldURL:             "URL",
	fieldSSID:            "Network name",
	fieldPassword:        "Password",
	fieldEncryption:      "Encryption",
	fieldName:            "Name",
	fieldEmail:           "Email",
	fieldPhone:           "Phone",
	fieldModuleColor:     "QR color",
	fieldBackgroundColor: "Background",
	fieldSize:            "Size",
}

var templateFields = map[models.Template][]genField{
	models.TemplateText:    {fieldText},
	models.TemplateURL:     {fieldURL},
	models.TemplateWiFi:    {fieldSSID, fieldPassword, fieldEncryption},
	models.TemplateContact: {fieldName, fieldEmail, fieldPhone},
}

// change tells the app which controller call an edit needs.
type change int

const (
	changeNone change = iota
	changeRequest
	changeOptions
)

// generatorModel is the generator form. Every template keeps its own
// inputs, so switching templates back and forth keeps what was typed.
type generatorModel struct {
	inputs     [fieldCount]textinput.Model
	template   int
	encryption int
	size       int
	focus      int
}

func newGeneratorModel() generatorModel {
	var m generatorModel
	for f := range fieldCount {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 40
		m.inputs[f] = in
	}
	m.inputs[fieldText].Placeholder = "Enter your text here"
	m.inputs[fieldURL].Placeholder = "https://example.com"
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldEmail].Placeholder = "john@example.com"
	m.inputs[fieldPhone].Placeholder = "+1 234 567 8900"
	m.inputs[fieldModuleColor].SetValue(models.DefaultModuleColor)
	m.inputs[fieldModuleColor].CharLimit = 7
	m.inputs[fieldBackgroundColor].SetValue(models.DefaultBackgroundColor)
	m.inputs[fieldBackgroundColor].CharLimit = 7
	m.size = models.DefaultPixelSize

	return m
}

func (m generatorModel) currentTemplate() models.Template {
	return models.Templates[m.template]
}

// fields lists the focusable fields of the current template in order.
func (m generatorModel) fields() []genField {
	fields := []genField{fieldTemplate}
	fields = append(fields, templateFields[m.currentTemplate()]...)
	return append(fields, fieldModuleColor, fieldBackgroundColor, fieldSize)
}

func (m generatorModel) focused() genField {
	return m.fields()[m.focus]
}

func (m generatorModel) isTextField(f genField) bool {
	return f != fieldTemplate && f != fieldEncryption && f != fieldSize
}

func (m generatorModel) request() models.PayloadRequest {
	value := func(f genField) string { return m.inputs[f].Value() }

	switch m.currentTemplate() {
	case models.TemplateURL:
		return models.NewURLRequest(value(fieldURL))
	case models.TemplateWiFi:
		return models.NewWiFiRequest(value(fieldSSID), value(fieldPassword), models.WiFiEncryptions[m.encryption])
	case models.TemplateContact:
		return models.NewContactRequest(value(fieldName), value(fieldEmail), value(fieldPhone))
	default:
		return models.NewTextRequest(value(fieldText))
	}
}

func (m generatorModel) options() models.EncodeOptions {
	return models.EncodeOptions{
		ModuleColor:     strings.TrimSpace(m.inputs[fieldModuleColor].Value()),
		BackgroundColor: strings.TrimSpace(m.inputs[fieldBackgroundColor].Value()),
		PixelSize:       m.size,
	}
}

func (m generatorModel) setFocus(i int) generatorModel {
	fields := m.fields()
	if f := fields[m.focus]; m.isTextField(f) {
		m.inputs[f].Blur()
	}
	m.focus = (i + len(fields)) % len(fields)
	if f := fields[m.focus]; m.isTextField(f) {
		m.inputs[f].Focus()
	}
	return m
}

func (m generatorModel) setTemplate(i int) generatorModel {
	m = m.setFocus(0)
	m.template = (i + len(models.Templates)) % len(models.Templates)
	return m
}

func (m generatorModel) stepSize(delta int) generatorModel {
	m.size = min(max(m.size+delta, models.MinPixelSize), models.MaxPixelSize)
	return m
}

// update applies a key press to the form and reports what it changed.
func (m generatorModel) update(msg tea.KeyMsg) (generatorModel, change, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		return m.setFocus(m.focus + 1), changeNone, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		return m.setFocus(m.focus - 1), changeNone, nil
	}

	step := 0
	switch {
	case key.Matches(msg, keys.left):
		step = -1
	case key.Matches(msg, keys.right):
		step = 1
	}

	switch f := m.focused(); f {
	case fieldTemplate:
		if step == 0 {
			return m, changeNone, nil
		}
		return m.setTemplate(m.template + step), changeRequest, nil
	case fieldEncryption:
		if step == 0 {
			return m, changeNone, nil
		}
		n := len(models.WiFiEncryptions)
		m.encryption = (m.encryption + step + n) % n
		return m, changeRequest, nil
	case fieldSize:
		if step == 0 {
			return m, changeNone, nil
		}
		before := m.size
		m = m.stepSize(step * models.PixelSizeStep)
		if m.size == before {
			return m, changeNone, nil
		}
		return m, changeOptions, nil
	default:
		before := m.inputs[f].Value()
		var cmd tea.Cmd
		m.inputs[f], cmd = m.inputs[f].Update(msg)
		if m.inputs[f].Value() == before {
			return m, changeNone, cmd
		}
		if f == fieldModuleColor || f == fieldBackgroundColor {
			return m, changeOptions, cmd
		}
		return m, changeRequest, cmd
	}
}

func (m generatorModel) View(s controller.GeneratorState, spin string) string {
	var b strings.Builder
	focused := m.focused()

	row := func(f genField, value string) {
		label := fmt.Sprintf("%-13s", fieldLabels[f]+":")
		if f == focused {
			b.WriteString(focusedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString(" " + value + "\n")
	}

	row(fieldTemplate, choiceView(templateTitles(), m.template))
	for _, f := range templateFields[m.currentTemplate()] {
		if f == fieldEncryption {
			row(f, choiceView(encryptionTitles(), m.encryption))
			continue
		}
		row(f, m.inputs[f].View())
	}
	b.WriteString("\n")
	row(fieldModuleColor, m.inputs[fieldModuleColor].View())
	row(fieldBackgroundColor, m.inputs[fieldBackgroundColor].View())
	row(fieldSize, "< "+strconv.Itoa(m.size)+"px >")
	b.WriteString("\n")

	switch {
	case s.Err != "":
		b.WriteString(errorStyle.Render(s.Err) + "\n")
	case s.Encoding:
		b.WriteString(spin + " Generating...\n")
	case s.Image != nil:
		b.WriteString(s.Image.Preview)
		b.WriteString(fmt.Sprintf("\n%dx%d px, %s\n", s.Image.Size, s.Image.Size, models.DownloadFileName(s.Image.Template)))
	default:
		b.WriteString(helpStyle.Render("Fill in the form to generate a QR code.") + "\n")
	}

	if s.Payload != "" {
		b.WriteString("\nContent: " + fitText(strings.ReplaceAll(s.Payload, "\n", " | "), 70) + "\n")
	}

	return b.String()
}

func choiceView(options []string, selected int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			parts[i] = activeTabStyle.Render(o)
			continue
		}
		parts[i] = helpStyle.Render(o)
	}
	return "< " + strings.Join(parts, "  ") + " >"
}

func templateTitles() []string {
	titles := make([]string, 0, len(models.Templates))
	for _, t := range models.Templates {
		titles = append(titles, t.Title())
	}
	return titles
}

func encryptionTitles() []string {
	titles := make([]string, 0, len(models.WiFiEncryptions))
	for _, e := range models.WiFiEncryptions {
		titles = append(titles, e.Title())
	}
	return titles
}

