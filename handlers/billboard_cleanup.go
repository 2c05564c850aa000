package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
)

// HandleBillboardCleanup releases billboards whose contract rental
// window has ended: status back to available, contract link and
// mirrored dates cleared.
func HandleBillboardCleanup(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter(
			"billboards",
			"contract != ''",
			"", 0, 0,
			nil,
		)
		if err != nil {
			log.Printf("billboard_cleanup: could not query billboards: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		today := time.Now()
		released := 0
		for _, rec := range records {
			end, ok := services.ParseDate(rec.GetString("rent_end"))
			if !ok || !end.Before(today) {
				continue
			}
			rec.Set("contract", "")
			rec.Set("status", "available")
			rec.Set("rent_start", "")
			rec.Set("rent_end", "")
			if err := app.Save(rec); err != nil {
				log.Printf("billboard_cleanup: failed to release billboard %s: %v", rec.Id, err)
				continue
			}
			released++
		}

		log.Printf("billboard_cleanup: released %d billboard(s)\n", released)
		SetToast(e, "success", fmt.Sprintf("تم تحرير %d لوحة", released))
		return redirect(e, "/billboards")
	}
}
