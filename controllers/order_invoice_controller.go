package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates and returns a PDF invoice for an owned order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	order, appErr := findOwnedOrder(merchant.ID, c.Param("id"))
	if appErr != nil {
		utils.LogError("Order lookup failed for merchant %d: %v", merchant.ID, appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	if err := config.DB.Preload("Product").Preload("Customer").First(order, order.ID).Error; err != nil {
		utils.LogError("Failed to load order %d relations: %v", order.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	businessName := merchant.BusinessInfo.Name
	if businessName == "" {
		businessName = "DukaanDesk Store"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, businessName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	if merchant.BusinessInfo.Address != "" {
		pdf.Cell(100, 8, merchant.BusinessInfo.Address)
		pdf.Ln(8)
	}
	if merchant.BusinessInfo.Phone != "" {
		pdf.Cell(100, 8, "Phone: "+merchant.BusinessInfo.Phone)
		pdf.Ln(8)
	}
	if merchant.UPINumber != "" {
		pdf.Cell(100, 8, "UPI: "+merchant.UPINumber)
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Status: "+order.Status)
	if order.PaidAt != nil {
		pdf.Cell(60, 8, "Paid At: "+order.PaidAt.Format("2006-01-02 15:04:05"))
	}
	pdf.Ln(8)
	if order.TxnID != nil {
		pdf.Cell(100, 8, "Transaction ID: "+*order.TxnID)
		pdf.Ln(8)
	}

	// Customer info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Customer phone: "+order.Customer.Phone)
	pdf.Ln(10)

	// Item table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(90, 8, order.Product.Name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", order.Amount), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", order.Amount), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate invoice PDF for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Generated invoice for order %d", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", order.ID))
	c.Data(200, "application/pdf", buf.Bytes())
}
