package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrders downloads the merchant's order book as an Excel file
func ExportOrders(c *gin.Context) {
	utils.LogInfo("ExportOrders called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := config.DB.Where("merchant_id = ?", merchant.ID).
		Preload("Product").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for export, merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}
	utils.LogDebug("Exporting %d orders for merchant %d", len(orders), merchant.ID)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create export sheet: %v", err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	header := sheet.AddRow()
	headerStyle := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	headerStyle.Font = *font
	for _, title := range []string{"Order ID", "Date", "Product", "Customer Phone", "Amount", "Status", "Paid At", "Transaction ID"} {
		cell := header.AddCell()
		cell.Value = title
		cell.SetStyle(headerStyle)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().Value = order.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = order.Product.Name
		row.AddCell().Value = order.Customer.Phone
		row.AddCell().SetFloat(order.Amount)
		row.AddCell().Value = order.Status
		if order.PaidAt != nil {
			row.AddCell().Value = order.PaidAt.Format(time.RFC3339)
		} else {
			row.AddCell().Value = ""
		}
		if order.TxnID != nil {
			row.AddCell().Value = *order.TxnID
		} else {
			row.AddCell().Value = ""
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write export file: %v", err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Generated order export for merchant %d", merchant.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", time.Now().Format("2006-01-02")))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
