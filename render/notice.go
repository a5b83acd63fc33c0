package render

import (
	"context"
	"strconv"
	"time"

	"go-storefront/models"

	"github.com/a-h/templ"
)

// NoticesView is the set of visible notices and when the region should be
// fetched again to drop the oldest one.
type NoticesView struct {
	Items     []models.Notice
	RefreshIn time.Duration
}

// Notices renders the notification stack. While notices are showing, the
// region polls itself once the next notice expires.
func Notices(view NoticesView, swapOOB bool) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div`)
		hw.attr("id", NoticesID)
		hw.raw(` class="notifications" aria-live="polite"`)
		oob(hw, swapOOB)
		if len(view.Items) > 0 && view.RefreshIn > 0 {
			hw.raw(` hx-get="/notifications" hx-swap="outerHTML"`)
			hw.attr("hx-trigger", "load delay:"+strconv.FormatInt(view.RefreshIn.Milliseconds(), 10)+"ms")
		}
		hw.raw(`>`)
		for _, n := range view.Items {
			hw.raw(`<div class="notification"`)
			hw.attr("data-id", n.ID)
			hw.raw(`>`)
			hw.text(n.Message)
			hw.raw(`</div>`)
		}
		hw.raw(`</div>`)
	})
}
