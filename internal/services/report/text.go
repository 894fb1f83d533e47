// Package report renders a scored army as plain text for the command line
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/army-rater/internal/engine"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
)

const defaultBarWidth = 20

// TextConfig controls the text layout
type TextConfig struct {
	// BarWidth is the number of cells in a full bar. Zero uses the default.
	BarWidth int
}

// Validate validates the config
func (cfg *TextConfig) Validate() error {
	if cfg.BarWidth < 0 {
		return errors.InvalidArgument("bar width cannot be negative")
	}
	return nil
}

// Text writes reports as aligned plain text
type Text struct {
	barWidth int
}

// NewText creates a text renderer. A nil config uses the defaults.
func NewText(cfg *TextConfig) (*Text, error) {
	if cfg == nil {
		cfg = &TextConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	width := cfg.BarWidth
	if width == 0 {
		width = defaultBarWidth
	}
	return &Text{barWidth: width}, nil
}

// Render writes one block per unit followed by the army totals. units and
// rep.Score.Units must be index aligned, as produced by Engine.Evaluate.
func (t *Text) Render(w io.Writer, units []army.Unit, rep *engine.Report) error {
	if rep == nil || rep.Score == nil || rep.Assessment == nil {
		return errors.InvalidArgument("report is required")
	}
	if len(units) != len(rep.Score.Units) {
		return errors.InvalidArgumentf("have %d units but %d scores", len(units), len(rep.Score.Units))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	th := rep.Assessment.Thresholds

	fmt.Fprintf(tw, "Army rating for a %d point game\n\n", th.GameSize)

	for i, u := range units {
		score := rep.Score.Units[i]
		var bars engine.UnitBars
		if i < len(rep.Assessment.Bars) {
			bars = rep.Assessment.Bars[i]
		}
		t.renderUnit(tw, u, score, bars)
	}

	s := rep.Score
	a := rep.Assessment
	fmt.Fprintf(tw, "TOTAL\t%d pts\n", s.TotalPoints)
	fmt.Fprintf(tw, "  offense\t%.0f\t%s\t%s\n", s.TotalOffense, a.Offense, th.Offense.Describe())
	fmt.Fprintf(tw, "  defense\t%.0f\t%s\t%s\n", s.TotalDefense, a.Defense, th.Defense.Describe())
	fmt.Fprintf(tw, "  tactical\t%.0f\t%s\t%s\n", s.TotalTactical, a.Tactical, th.Tactical.Describe())

	return tw.Flush()
}

func (t *Text) renderUnit(w io.Writer, u army.Unit, score engine.UnitScore, bars engine.UnitBars) {
	status := ""
	if !score.Active {
		status = "  (not fielded)"
	}
	fmt.Fprintf(w, "[%d] %dx %s%s\t%d pts\n", score.Index+1, score.Quantity, u.Name, status, u.Points*score.Quantity)
	fmt.Fprintf(w, "    %d pts / %d models\n", u.Points, u.Models)
	fmt.Fprintf(w, "    %s\n", profileLine(u))
	if buffs := buffLabels(u.Modifiers); len(buffs) > 0 {
		fmt.Fprintf(w, "    buffs: %s\n", strings.Join(buffs, ", "))
	}

	for i, ws := range score.Weapons {
		if i >= len(u.Weapons) {
			break
		}
		wp := u.Weapons[i]
		marker := ""
		if !ws.Counted {
			marker = " *"
		}
		line := fmt.Sprintf("    %dx %s (%gA / S%d / AP%d)", wp.Quantity, wp.Name, wp.Attacks, wp.Strength, wp.AP)
		if labels := weaponLabels(wp); len(labels) > 0 {
			line += " [" + strings.Join(labels, ", ") + "]"
		}
		fmt.Fprintf(w, "%s\t%.1f%s\n", line, ws.Total, marker)
	}
	if len(u.Weapons) == 0 {
		fmt.Fprintf(w, "    (no weapons)\n")
	}

	fmt.Fprintf(w, "    offense\t%.1f\t%s\n", score.Offense, t.bar(bars.Offense))
	fmt.Fprintf(w, "    defense\t%.1f\t%s\n", score.Defense, t.bar(bars.Defense))
	fmt.Fprintf(w, "    tactical\t%.1f\t%s\n", score.Tactical, t.bar(bars.Tactical))
	fmt.Fprintln(w)
}

func profileLine(u army.Unit) string {
	line := fmt.Sprintf("T%d Sv%d+ Inv%d+", u.Toughness, u.Save, u.Invulnerable)
	if u.FeelNoPain < army.NoRoll {
		line += fmt.Sprintf(" FNP%d+", u.FeelNoPain)
	}
	return line + fmt.Sprintf(" W%d | OC%d Ld%d+", u.Wounds, u.ObjectiveControl, u.Leadership)
}

func buffLabels(m army.Modifiers) []string {
	var labels []string
	if m.LethalHits {
		labels = append(labels, "lethal hits")
	}
	if m.DevastatingWounds {
		labels = append(labels, "devastating wounds")
	}
	if m.MinusOneToWound {
		labels = append(labels, "-1 to wound")
	}
	if m.HitBonus > 0 {
		labels = append(labels, fmt.Sprintf("+%d to hit", m.HitBonus))
	}
	if m.SustainedBonus > 0 {
		labels = append(labels, fmt.Sprintf("sustained %d", m.SustainedBonus))
	}
	if m.SaveBonus > 0 {
		labels = append(labels, fmt.Sprintf("Sv+%d", m.SaveBonus))
	}
	if m.Invulnerable < army.NoRoll {
		labels = append(labels, fmt.Sprintf("%d++", m.Invulnerable))
	}
	if m.FeelNoPain < army.NoRoll {
		labels = append(labels, fmt.Sprintf("%d+++", m.FeelNoPain))
	}
	return labels
}

func weaponLabels(w army.Weapon) []string {
	var labels []string
	if w.Grouped() {
		labels = append(labels, "group "+w.Group)
	}
	if w.Torrent {
		labels = append(labels, "torrent")
	}
	if w.Sustained > 0 {
		labels = append(labels, fmt.Sprintf("sustained %d", w.Sustained))
	}
	if w.LethalHits {
		labels = append(labels, "lethal")
	}
	if w.DevastatingWounds {
		labels = append(labels, "devastating")
	}
	if w.TwinLinked {
		labels = append(labels, "twin-linked")
	}
	if w.Tags != "" {
		labels = append(labels, w.Tags)
	}
	return labels
}

// bar draws percent (0-100) as a fixed width gauge
func (t *Text) bar(percent float64) string {
	filled := int(percent / 100 * float64(t.barWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > t.barWidth {
		filled = t.barWidth
	}
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", filled), strings.Repeat(".", t.barWidth-filled), percent)
}
