package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

// HandleContractSave handles both POST /contracts (create) and
// POST /contracts/{id}/save (update). All contract money figures are
// derived here, in one place, and persisted; pages only ever read them
// back.
func HandleContractSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة النموذج")
		}

		contractID := e.Request.PathValue("id")
		company := GetCompany(e.Request)

		data := contractFormFromRequest(e)
		data.ID = contractID

		boardIDs := e.Request.Form["billboards"]

		// Validation
		if data.CustomerName == "" {
			data.Errors["customer_name"] = "اسم العميل مطلوب"
		}
		start, startOK := services.ParseDate(data.StartDate)
		if !startOK {
			data.Errors["start_date"] = "تاريخ البداية غير صالح"
		}
		if len(boardIDs) == 0 {
			data.Errors["billboards"] = "اختر لوحة واحدة على الأقل"
		}

		var existing *core.Record
		if contractID != "" {
			var err error
			existing, err = app.FindRecordById("contracts", contractID)
			if err != nil {
				log.Printf("contract_save: could not find contract %s: %v", contractID, err)
				return ErrorToast(e, http.StatusNotFound, "العقد غير موجود")
			}
			data.Number = existing.GetString("contract_number")
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "يرجى تصحيح الأخطاء أدناه")
			selected := make(map[string]bool, len(boardIDs))
			for _, id := range boardIDs {
				selected[id] = true
			}
			data.Boards = boardOptions(app, selected)
			component := templates.ContractFormPage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		boards, missing := resolveBoards(app, boardIDs)
		if missing != "" {
			log.Printf("contract_save: billboard %s not found", missing)
			return ErrorToast(e, http.StatusBadRequest, "إحدى اللوحات المختارة غير موجودة")
		}

		customerRec, err := services.EnsureCustomer(app, data.CustomerName, data.Company, data.Phone)
		if err != nil {
			log.Printf("contract_save: could not ensure customer %q: %v", data.CustomerName, err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		rows, err := services.LoadPricingRows(app)
		if err != nil {
			log.Printf("contract_save: could not load pricing: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "تعذر تحميل جدول الأسعار")
		}

		// A stored snapshot keeps historical per-board prices stable
		// across edits; new boards get fresh lookups.
		snapshot := map[string]float64{}
		if existing != nil {
			snapshot = services.ParsePriceSnapshot(existing.GetString("price_snapshot"))
		}

		rent, perBoard := services.CalcRentalBase(rows, boards, data.Category, data.DurationMonths, snapshot)
		install := services.CalcInstallation(rows, boards)
		printPrice := data.PrintPricePerMeter
		if printPrice <= 0 {
			printPrice = company.PrintPrice
		}
		printCost := services.CalcPrintCost(boards, data.PrintEnabled, printPrice)

		totals := services.AssembleTotals(services.ContractInput{
			Rent:         rent,
			Installation: install.Total,
			Print:        printCost.Total,
			Discount:     data.Discount,
			DiscountMode: services.DiscountMode(data.DiscountMode),
			FeeRate:      data.FeeRate,
		})

		// Non-dinar contracts store figures in the contract currency.
		if data.CurrencyCode != "دينار" && data.ExchangeRate > 0 {
			totals = totals.Convert(data.ExchangeRate)
		}

		endDate := start.AddDate(0, data.DurationMonths, 0)

		number := data.Number
		if number == "" {
			number, err = services.GenerateContractNumber(app, time.Now())
			if err != nil {
				log.Printf("contract_save: could not generate contract number: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "تعذر توليد رقم العقد")
			}
		}

		installments := services.GenerateInstallments(
			totals.FinalTotal,
			data.InstallmentCount,
			start,
			services.InstallmentSpacing(data.InstallmentSpacing),
		)

		var record *core.Record
		if existing != nil {
			record = existing
		} else {
			col, err := app.FindCollectionByNameOrId("contracts")
			if err != nil {
				log.Printf("contract_save: could not find contracts collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
			}
			record = core.NewRecord(col)
		}

		startStr := start.Format("2006-01-02")
		endStr := endDate.Format("2006-01-02")

		record.Set("contract_number", number)
		record.Set("customer", customerRec.Id)
		record.Set("customer_name", data.CustomerName)
		record.Set("company", data.Company)
		record.Set("phone", data.Phone)
		record.Set("customer_category", data.Category)
		record.Set("ad_type", data.AdType)
		record.Set("start_date", startStr)
		record.Set("end_date", endStr)
		record.Set("duration_months", data.DurationMonths)
		record.Set("discount", data.Discount)
		record.Set("discount_mode", data.DiscountMode)
		record.Set("subtotal", totals.Subtotal)
		record.Set("discount_amount", totals.DiscountAmount)
		record.Set("total", totals.FinalTotal)
		record.Set("rental_only", totals.RentalOnly)
		record.Set("operating_fee", totals.OperatingFee)
		record.Set("fee_rate", data.FeeRate)
		record.Set("currency_code", data.CurrencyCode)
		record.Set("exchange_rate", data.ExchangeRate)
		record.Set("print_enabled", data.PrintEnabled)
		record.Set("print_price", printPrice)
		record.Set("installment_count", data.InstallmentCount)
		record.Set("installment_spacing", data.InstallmentSpacing)
		record.Set("installments", services.EncodeInstallments(installments))
		record.Set("price_snapshot", services.EncodePriceSnapshot(perBoard))

		wanted := make(map[string]bool, len(boards))
		for _, b := range boards {
			wanted[b.ID] = true
		}

		err = app.RunInTransaction(func(txApp core.App) error {
			if err := txApp.Save(record); err != nil {
				return err
			}
			// Release boards dropped from the contract.
			if contractID != "" {
				held, err := txApp.FindRecordsByFilter(
					"billboards",
					"contract = {:contract}",
					"", 0, 0,
					map[string]any{"contract": contractID},
				)
				if err != nil {
					return err
				}
				for _, b := range held {
					if wanted[b.Id] {
						continue
					}
					b.Set("contract", "")
					b.Set("status", "available")
					b.Set("rent_start", "")
					b.Set("rent_end", "")
					if err := txApp.Save(b); err != nil {
						return err
					}
				}
			}
			// Assign the selected boards and mirror the rental window.
			for _, b := range boards {
				rec, err := txApp.FindRecordById("billboards", b.ID)
				if err != nil {
					return err
				}
				rec.Set("contract", record.Id)
				rec.Set("status", "rented")
				rec.Set("rent_start", startStr)
				rec.Set("rent_end", endStr)
				if err := txApp.Save(rec); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("contract_save: could not save contract: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		if contractID == "" {
			SetToast(e, "success", "تم إنشاء العقد "+number)
		} else {
			SetToast(e, "success", "تم حفظ العقد "+number)
		}
		return redirect(e, "/contracts/"+record.Id)
	}
}

// contractFormFromRequest reads the contract form values. Numeric fields
// fall back to zero on parse failure; validation decides what is fatal.
func contractFormFromRequest(e *core.RequestEvent) templates.ContractFormData {
	return templates.ContractFormData{
		CustomerName:       strings.TrimSpace(e.Request.FormValue("customer_name")),
		Company:            strings.TrimSpace(e.Request.FormValue("company")),
		Phone:              strings.TrimSpace(e.Request.FormValue("phone")),
		Category:           e.Request.FormValue("category"),
		AdType:             e.Request.FormValue("ad_type"),
		StartDate:          e.Request.FormValue("start_date"),
		DurationMonths:     formInt(e, "duration_months", 1),
		Discount:           formFloat(e, "discount"),
		DiscountMode:       formChoice(e, "discount_mode", string(services.DiscountPercent), string(services.DiscountFixed)),
		PrintEnabled:       e.Request.FormValue("print_enabled") != "",
		PrintPricePerMeter: formFloat(e, "print_price"),
		FeeRate:            formFloat(e, "fee_rate"),
		CurrencyCode:       formChoice(e, "currency_code", services.CurrencyOptions...),
		ExchangeRate:       formFloat(e, "exchange_rate"),
		InstallmentCount:   formInt(e, "installment_count", 1),
		InstallmentSpacing: formChoice(e, "installment_spacing", string(services.SpacingMonthly), string(services.SpacingWeekly)),
		Errors:             make(map[string]string),
	}
}

func resolveBoards(app *pocketbase.PocketBase, ids []string) ([]services.Billboard, string) {
	boards := make([]services.Billboard, 0, len(ids))
	for _, id := range ids {
		rec, err := app.FindRecordById("billboards", id)
		if err != nil {
			return nil, id
		}
		boards = append(boards, services.BillboardFromRecord(rec))
	}
	return boards, ""
}

func formFloat(e *core.RequestEvent, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue(name)), 64)
	if err != nil {
		return 0
	}
	return v
}

func formInt(e *core.RequestEvent, name string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue(name)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// formChoice returns the submitted value when it is one of the allowed
// options, otherwise the first option.
func formChoice(e *core.RequestEvent, name string, options ...string) string {
	v := e.Request.FormValue(name)
	for _, opt := range options {
		if v == opt {
			return v
		}
	}
	return options[0]
}
