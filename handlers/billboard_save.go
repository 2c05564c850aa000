package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

func HandleBillboardNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.BillboardFormData{
			Faces:  2,
			Level:  "A",
			Errors: make(map[string]string),
		}
		component := templates.BillboardFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleBillboardEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("billboards", id)
		if err != nil {
			log.Printf("billboard_edit: could not find billboard %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "اللوحة غير موجودة")
		}

		b := services.BillboardFromRecord(rec)
		data := templates.BillboardFormData{
			ID:           b.ID,
			Name:         b.Name,
			Size:         b.Size,
			Faces:        b.Faces,
			Level:        b.Level,
			Municipality: b.Municipality,
			District:     b.District,
			Landmark:     b.Landmark,
			Errors:       make(map[string]string),
		}
		if b.Latitude != 0 {
			data.Latitude = strconv.FormatFloat(b.Latitude, 'f', -1, 64)
		}
		if b.Longitude != 0 {
			data.Longitude = strconv.FormatFloat(b.Longitude, 'f', -1, 64)
		}

		component := templates.BillboardFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleBillboardSave handles both POST /billboards (create) and
// POST /billboards/{id}/save (update).
func HandleBillboardSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة النموذج")
		}

		id := e.Request.PathValue("id")
		data := templates.BillboardFormData{
			ID:           id,
			Name:         strings.TrimSpace(e.Request.FormValue("name")),
			Size:         strings.TrimSpace(e.Request.FormValue("size")),
			Faces:        formInt(e, "faces", 2),
			Level:        e.Request.FormValue("level"),
			Municipality: e.Request.FormValue("municipality"),
			District:     strings.TrimSpace(e.Request.FormValue("district")),
			Landmark:     strings.TrimSpace(e.Request.FormValue("landmark")),
			Latitude:     strings.TrimSpace(e.Request.FormValue("latitude")),
			Longitude:    strings.TrimSpace(e.Request.FormValue("longitude")),
			Errors:       make(map[string]string),
		}

		if data.Name == "" {
			data.Errors["name"] = "اسم اللوحة مطلوب"
		}
		if data.Size == "" {
			data.Errors["size"] = "المقاس مطلوب"
		} else if _, _, ok := services.ParseSize(data.Size); !ok {
			data.Errors["size"] = "المقاس غير مقروء، مثال: 4x12"
		}

		var lat, lng float64
		var err error
		if data.Latitude != "" {
			if lat, err = strconv.ParseFloat(data.Latitude, 64); err != nil {
				data.Errors["latitude"] = "قيمة غير صالحة"
			}
		}
		if data.Longitude != "" {
			if lng, err = strconv.ParseFloat(data.Longitude, 64); err != nil {
				data.Errors["longitude"] = "قيمة غير صالحة"
			}
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "يرجى تصحيح الأخطاء أدناه")
			component := templates.BillboardFormPage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		var record *core.Record
		if id != "" {
			record, err = app.FindRecordById("billboards", id)
			if err != nil {
				log.Printf("billboard_save: could not find billboard %s: %v", id, err)
				return ErrorToast(e, http.StatusNotFound, "اللوحة غير موجودة")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("billboards")
			if err != nil {
				log.Printf("billboard_save: could not find billboards collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
			}
			record = core.NewRecord(col)
			record.Set("status", "available")
		}

		record.Set("name", data.Name)
		record.Set("size", services.CanonicalSize(data.Size))
		record.Set("faces", data.Faces)
		record.Set("level", data.Level)
		record.Set("municipality", data.Municipality)
		record.Set("district", data.District)
		record.Set("landmark", data.Landmark)
		record.Set("latitude", lat)
		record.Set("longitude", lng)

		if err := app.Save(record); err != nil {
			log.Printf("billboard_save: could not save billboard: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تم حفظ اللوحة")
		return redirect(e, "/billboards")
	}
}

func HandleBillboardDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "رقم اللوحة مفقود")
		}

		record, err := app.FindRecordById("billboards", id)
		if err != nil {
			log.Printf("billboard_delete: could not find billboard %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "اللوحة غير موجودة")
		}

		if record.GetString("contract") != "" {
			return ErrorToast(e, http.StatusConflict, "اللوحة مرتبطة بعقد، فك الارتباط أولاً")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("billboard_delete: failed to delete billboard %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تم حذف اللوحة")
		return redirect(e, "/billboards")
	}
}
