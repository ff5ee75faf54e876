package msg

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/catalog"
)

// FetchOffers returns a command that fetches the offers for a location and
// reports the outcome as an OffersLoadedMsg tagged with gen.
func FetchOffers(ctx context.Context, f catalog.Fetcher, gen uint64, postcode, area string) tea.Cmd {
	return func() tea.Msg {
		offers, err := f.FetchOffers(ctx, postcode, area)
		if err != nil {
			return OffersLoadedMsg{Generation: gen, Err: err}
		}
		return OffersLoadedMsg{Generation: gen, Offers: offers}
	}
}

// ExpireNotice returns a command that sends a NoticeExpiredMsg for id after d.
func ExpireNotice(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}
