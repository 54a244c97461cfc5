package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizcheck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗███████╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ██╔══██╗██║╚══███╔╝██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 ██████╔╝██║  ███╔╝ ██║     ███████║█████╗  ██║     █████╔╝
 ██╔══██╗██║ ███╔╝  ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██████╔╝██║███████╗╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═════╝ ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "B I Z C H E C K"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 64

// RenderBanner returns the BIZCHECK banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
