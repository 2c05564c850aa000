package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/collections"
	"billboardadmin/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	app := pocketbase.New()

	// Create collections, seed data and normalize legacy rows on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.NormalizeBillboardSizes(app); err != nil {
			log.Printf("Warning: size normalization failed: %v", err)
		}
		if err := collections.MigrateLegacyInstallments(app); err != nil {
			log.Printf("Warning: installment migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Settings record is loaded once per request
		se.Router.BindFunc(handlers.CompanyMiddleware(app))

		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/contracts")
		})

		// ── Contracts ────────────────────────────────────────────
		se.Router.GET("/contracts", handlers.HandleContractList(app))
		se.Router.GET("/contracts/create", handlers.HandleContractNew(app))
		se.Router.POST("/contracts", handlers.HandleContractSave(app))
		se.Router.GET("/contracts/{id}/edit", handlers.HandleContractEdit(app))
		se.Router.POST("/contracts/{id}/save", handlers.HandleContractSave(app))
		se.Router.GET("/contracts/{id}/print", handlers.HandleContractPrint(app))
		se.Router.GET("/contracts/{id}/export/pdf", handlers.HandleContractExportPDF(app))
		se.Router.DELETE("/contracts/{id}", handlers.HandleContractDelete(app))
		se.Router.POST("/contracts/{id}/delete", handlers.HandleContractDelete(app))
		se.Router.GET("/contracts/{id}", handlers.HandleContractView(app))

		// ── Billboards ───────────────────────────────────────────
		se.Router.GET("/billboards", handlers.HandleBillboardList(app))
		se.Router.GET("/billboards/create", handlers.HandleBillboardNew(app))
		se.Router.POST("/billboards", handlers.HandleBillboardSave(app))
		se.Router.GET("/billboards/import", handlers.HandleBillboardImportPage(app))
		se.Router.POST("/billboards/import", handlers.HandleBillboardImport(app))
		se.Router.GET("/billboards/import/template", handlers.HandleBillboardTemplate(app))
		se.Router.POST("/billboards/cleanup", handlers.HandleBillboardCleanup(app))
		se.Router.GET("/billboards/{id}/edit", handlers.HandleBillboardEdit(app))
		se.Router.POST("/billboards/{id}/save", handlers.HandleBillboardSave(app))
		se.Router.DELETE("/billboards/{id}", handlers.HandleBillboardDelete(app))
		se.Router.POST("/billboards/{id}/delete", handlers.HandleBillboardDelete(app))

		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/customers/create", handlers.HandleCustomerNew(app))
		se.Router.POST("/customers", handlers.HandleCustomerSave(app))
		se.Router.GET("/customers/{id}/edit", handlers.HandleCustomerEdit(app))
		se.Router.POST("/customers/{id}/save", handlers.HandleCustomerSave(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))
		se.Router.POST("/customers/{id}/delete", handlers.HandleCustomerDelete(app))

		// ── Ledger / statement ───────────────────────────────────
		se.Router.GET("/customers/{id}/payments", handlers.HandlePaymentsPage(app))
		se.Router.POST("/customers/{id}/payments", handlers.HandlePaymentAdd(app))
		se.Router.POST("/customers/{id}/payments/{paymentId}/delete", handlers.HandlePaymentDelete(app))
		se.Router.GET("/customers/{id}/statement", handlers.HandleStatementPrint(app))
		se.Router.GET("/customers/{id}/statement/export/excel", handlers.HandleStatementExcel(app))

		// ── Invoices ─────────────────────────────────────────────
		se.Router.GET("/invoices", handlers.HandleInvoiceList(app))
		se.Router.GET("/invoices/new", handlers.HandleInvoiceBuildPage(app))
		se.Router.POST("/invoices/build", handlers.HandleInvoiceBuild(app))
		se.Router.GET("/invoices/{id}/print", handlers.HandleInvoicePrint(app))
		se.Router.POST("/invoices/{id}/delete", handlers.HandleInvoiceDelete(app))

		// ── Settings ─────────────────────────────────────────────
		se.Router.GET("/settings", handlers.HandleSettingsPage(app))
		se.Router.POST("/settings", handlers.HandleSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
