package handlers

import (
	"fmt"

	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/store"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func exportProductsHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")

		products, err := store.FindAll[models.Product](c.Request.Context(), api.Store, userEmail, false)
		if err != nil {
			api.internalError(c, "products", "Export", userEmail, err)
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := "Products"
		f.SetSheetName("Sheet1", sheet)

		writeHeaderRow(f, sheet, []string{
			"ID", "Product Name", "Product Code", "Unit", "Sale Rate", "Buy Rate",
			"Opening Stock", "Min Alert Level", "Warehouse", "Created At",
		})
		for i, p := range products {
			setRow(f, sheet, i+2, []interface{}{
				p.Id, p.ProductName, p.ProductCode, p.Unit,
				p.SaleRate.String(), p.BuyRate.String(),
				p.OpeningStock.String(), p.MinAlertLevel.String(),
				p.Warehouse, p.CreatedAt.String(),
			})
		}

		c.Header("Content-Type", xlsxContentType)
		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		if err := f.Write(c.Writer); err != nil {
			api.internalError(c, "products", "Export", userEmail, err)
		}
	}
}

func exportInvoicesHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")

		invoices, err := store.FindAll[models.Invoice](c.Request.Context(), api.Store, userEmail, false)
		if err != nil {
			api.internalError(c, "invoices", "Export", userEmail, err)
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := "Invoices"
		f.SetSheetName("Sheet1", sheet)

		writeHeaderRow(f, sheet, []string{
			"ID", "Invoice Number", "Invoice Date", "Due Date", "Client ID",
			"Subtotal", "Discount", "Tax", "Shipping", "Adjustment", "Total", "Status",
		})
		for i, inv := range invoices {
			setRow(f, sheet, i+2, []interface{}{
				inv.Id, inv.InvoiceNumber, inv.InvoiceDate.String(), inv.DueDate.String(), inv.ClientId,
				inv.Subtotal.String(), inv.Discount.String(), inv.Tax.String(),
				inv.Shipping.String(), inv.Adjustment.String(), inv.Total.String(), inv.Status,
			})
		}

		c.Header("Content-Type", xlsxContentType)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoices.xlsx"))
		if err := f.Write(c.Writer); err != nil {
			api.internalError(c, "invoices", "Export", userEmail, err)
		}
	}
}
