package msg

import "github.com/Selahattinozdmr/rem-waste-demo/internal/skip"

// OffersLoadedMsg is the result of a catalog fetch.
type OffersLoadedMsg struct {
	// Generation is the fetch generation the result belongs to
	Generation uint64

	// Offers is the decoded catalog when Err is nil
	Offers []skip.Offer

	// Err is the fetch failure, if any
	Err error
}

// NoticeExpiredMsg clears a transient notice once its display time is up.
type NoticeExpiredMsg struct {
	ID int
}
