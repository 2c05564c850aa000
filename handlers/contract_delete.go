package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleContractDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "رقم العقد مفقود")
		}

		record, err := app.FindRecordById("contracts", id)
		if err != nil {
			log.Printf("contract_delete: could not find contract %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "العقد غير موجود")
		}

		err = app.RunInTransaction(func(txApp core.App) error {
			held, err := txApp.FindRecordsByFilter(
				"billboards",
				"contract = {:contract}",
				"", 0, 0,
				map[string]any{"contract": id},
			)
			if err != nil {
				return err
			}
			for _, b := range held {
				b.Set("contract", "")
				b.Set("status", "available")
				b.Set("rent_start", "")
				b.Set("rent_end", "")
				if err := txApp.Save(b); err != nil {
					return err
				}
			}
			return txApp.Delete(record)
		})
		if err != nil {
			log.Printf("contract_delete: failed to delete contract %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		log.Printf("contract_delete: deleted contract %s\n", id)
		SetToast(e, "success", "تم حذف العقد")
		return redirect(e, "/contracts")
	}
}
