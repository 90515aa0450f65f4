package sales

import "time"

// 列名统一小写：postgres 会把未加引号的标识符折叠为小写，
// 手写 SQL 里的 DepartmentId / BaseSalary 才能在三种库上都命中。

type DepartmentModel struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:30;not null"`
}

func (DepartmentModel) TableName() string { return "department" }

type SellerModel struct {
	ID           int              `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string           `gorm:"column:name;size:50;not null"`
	Email        *string          `gorm:"column:email;size:30"`
	BirthDate    *time.Time       `gorm:"column:birthdate;type:date"`
	BaseSalary   *float64         `gorm:"column:basesalary"`
	DepartmentID int              `gorm:"column:departmentid;not null;index"`
	Department   *DepartmentModel `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (SellerModel) TableName() string { return "seller" }
