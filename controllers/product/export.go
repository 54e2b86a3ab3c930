package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/nadirkerem/mongodb-ecommerce-app/apierr"
	"github.com/nadirkerem/mongodb-ecommerce-app/repository"
)

// ExportProducts streams the full catalog as an Excel workbook.
// GET /api/products/export
func ExportProducts(products repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.Find(c.Request.Context(), repository.ListOptions{})
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Price", "Description", "Category", "UserRating"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID.Hex())
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Category)
			if p.UserRating != nil {
				row.AddCell().SetValue(*p.UserRating)
			} else {
				row.AddCell().SetValue("")
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			apierr.Respond(c, err)
			return
		}
	}
}
