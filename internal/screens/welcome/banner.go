package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/jusmind/jusmind/internal/ui/theme"
)

const bannerArt = `
      ██╗██╗   ██╗███████╗███╗   ███╗██╗███╗   ██╗██████╗
      ██║██║   ██║██╔════╝████╗ ████║██║████╗  ██║██╔══██╗
      ██║██║   ██║███████╗██╔████╔██║██║██╔██╗ ██║██║  ██║
 ██   ██║██║   ██║╚════██║██║╚██╔╝██║██║██║╚██╗██║██║  ██║
 ╚█████╔╝╚██████╔╝███████║██║ ╚═╝ ██║██║██║ ╚████║██████╔╝
  ╚════╝  ╚═════╝ ╚══════╝╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝`

const bannerCompact = "J U S M I N D"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 60

// RenderBanner returns the JUSMIND banner styled in the primary color.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
