package status

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/pixeloracle/internal/application"
	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// headroomScale is the balance multiple of the minimum at which the bar is full.
const headroomScale = 10.0

type RenderOptions struct {
	Now time.Time
}

func renderView(status application.LedgerStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("🔮 PixelOracle"),
		s.header.Render(fmt.Sprintf("network: %s (chain %d)", status.Network, status.Network.ChainID())),
	}

	details := []string{
		field("contract", contractValue(status.Contract, s), s),
		field("wallet", s.value.Render(status.Wallet), s),
		field("balance", s.value.Render(status.BalanceETH+" ETH"), s),
		field("headroom", headroomLine(status.Balance, status.MinBalance, s), s),
		field("minted", s.value.Render(mintedLabel(status.TotalMinted)), s),
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, details...)))
	lines = append(lines, s.section.Render(fundingLine(status, s)))

	if checked := checkedLabel(status.CheckedAt, opts.Now); checked != "" {
		lines = append(lines, s.faint.Render(checked))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(label, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label+":"), value)
}

func contractValue(contract string, s styles) string {
	if strings.TrimSpace(contract) == "" {
		return s.warning.Render("not configured")
	}
	return s.value.Render(contract)
}

func mintedLabel(total *big.Int) string {
	if total == nil {
		return "n/a"
	}
	if total.Cmp(big.NewInt(1)) == 0 {
		return "1 artwork"
	}
	return total.String() + " artworks"
}

func fundingLine(status application.LedgerStatus, s styles) string {
	if status.Funded {
		return s.funded.Render("✓ funded: cycles will mint")
	}
	return s.warning.Render(fmt.Sprintf("⚠ low balance: cycles pause below %s ETH", status.MinBalance))
}

func headroomLine(balance *big.Int, minBalanceETH string, s styles) string {
	ratio, ok := headroomRatio(balance, minBalanceETH)
	if !ok {
		return s.faint.Render("n/a")
	}

	percent := clampPercent(ratio / headroomScale * 100)
	bar := renderProgressBar(percent, 24, s)
	meta := lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100)).Render(fmt.Sprintf("%.1fx minimum", ratio))

	return lipgloss.JoinHorizontal(lipgloss.Top, bar, " ", meta)
}

func headroomRatio(balance *big.Int, minBalanceETH string) (float64, bool) {
	if balance == nil {
		return 0, false
	}
	minimum, ok := domain.ParseEther(minBalanceETH)
	if !ok || minimum.Sign() <= 0 {
		return 0, false
	}

	ratio, _ := new(big.Rat).SetFrac(balance, minimum).Float64()
	return ratio, true
}

func renderProgressBar(filledPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(filledPercent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func checkedLabel(checkedAt, now time.Time) string {
	if checkedAt.IsZero() {
		return ""
	}
	if now.IsZero() || now.Sub(checkedAt) < time.Minute {
		return "checked " + checkedAt.Format("15:04:05")
	}
	return fmt.Sprintf("checked %s (%s ago)", checkedAt.Format("15:04:05"), application.HumanDuration(now.Sub(checkedAt)))
}

// interpolateColor maps value onto the 240..255 greyscale ramp, brighter when higher.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
