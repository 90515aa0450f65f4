package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seller-desk/internal/feature/sales"
	"seller-desk/internal/transport/http/ez"
)

type sellerRow struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	BirthDate  *time.Time `json:"birthDate"`
	BaseSalary *float64   `json:"baseSalary"`
	Department string     `json:"department"`
}

type departmentStat struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Sellers     int64   `json:"sellers"`
	TotalSalary float64 `json:"totalSalary"`
}

// MountAdminActions 管理端接口集中注册
func MountAdminActions(admin *gin.RouterGroup, db *gorm.DB) {
	e := ez.New(admin)

	// GET /admin/v1/sellers?offset=&limit=&q=
	type listQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // 按 name/email 模糊搜
	}
	type listOut struct {
		Total int64       `json:"total"`
		Items []sellerRow `json:"items"`
	}
	ez.RegisterAction(e, ez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/sellers",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (listOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			if in.Offset < 0 {
				in.Offset = 0
			}
			q := db.WithContext(c.Request.Context()).Model(&sales.SellerModel{})
			if s := strings.TrimSpace(in.Q); s != "" {
				like := "%" + strings.ToLower(s) + "%"
				q = q.Where("lower(name) LIKE ? OR lower(email) LIKE ?", like, like)
			}
			q = q.Session(&gorm.Session{}) // Count 与 Find 各自克隆语句

			var total int64
			if err := q.Count(&total).Error; err != nil {
				return listOut{}, ez.Internal("count sellers failed", err)
			}

			var ms []sales.SellerModel
			if err := q.Preload("Department").Order("id").Limit(in.Limit).Offset(in.Offset).Find(&ms).Error; err != nil {
				return listOut{}, ez.Internal("list sellers failed", err)
			}

			out := listOut{Total: total, Items: make([]sellerRow, 0, len(ms))}
			for _, m := range ms {
				row := sellerRow{ID: m.ID, Name: m.Name, BirthDate: m.BirthDate, BaseSalary: m.BaseSalary}
				if m.Email != nil {
					row.Email = *m.Email
				}
				if m.Department != nil {
					row.Department = m.Department.Name
				}
				out.Items = append(out.Items, row)
			}
			return out, nil
		},
	})

	// GET /admin/v1/departments/stats  每个部门的人数与薪资合计
	ez.RegisterAction(e, ez.Action[struct{}, []departmentStat]{
		Method: http.MethodGet,
		Path:   "/departments/stats",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]departmentStat, error) {
			stats := []departmentStat{}
			err := db.WithContext(c.Request.Context()).
				Table("department").
				Select("department.id AS id, department.name AS name, " +
					"COUNT(seller.id) AS sellers, COALESCE(SUM(seller.basesalary), 0) AS total_salary").
				Joins("LEFT JOIN seller ON seller.departmentid = department.id").
				Group("department.id, department.name").
				Order("department.id").
				Scan(&stats).Error
			if err != nil {
				return nil, ez.Internal("department stats failed", err)
			}
			return stats, nil
		},
	})

	// DELETE /admin/v1/sellers/:id  与桌面端不同，这里区分“不存在”
	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/sellers/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.Atoi(c.Param("id"))
			if err != nil || id <= 0 {
				return nil, ez.BadRequest("invalid id")
			}
			res := db.WithContext(c.Request.Context()).Where("id = ?", id).Delete(&sales.SellerModel{})
			if res.Error != nil {
				return nil, ez.Internal("delete seller failed", res.Error)
			}
			if res.RowsAffected == 0 {
				return nil, ez.NotFound("seller not found")
			}
			return gin.H{"id": id}, nil
		},
	})
}
