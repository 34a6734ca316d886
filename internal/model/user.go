package model

import "time"

// Role pengguna, dipakai sebagai string apa adanya
const (
	RoleAdmin = "admin"
	RoleGRO   = "gro"
)

type User struct {
	IDUser    uint      `gorm:"column:iduser;primaryKey;autoIncrement" json:"iduser"`
	Username  string    `gorm:"column:username;size:50;unique;not null" json:"username"`
	Password  string    `gorm:"column:password;size:100" json:"-"`
	Nama      string    `gorm:"column:nama;size:100" json:"nama"`
	Role      string    `gorm:"column:role;size:10" json:"role"`
	Pos       string    `gorm:"column:pos;size:50" json:"pos"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// AktivitasPengguna mencatat request yang mengubah data.
type AktivitasPengguna struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string    `gorm:"size:50;index" json:"username"`
	Role       string    `gorm:"size:10" json:"role"`
	Aksi       string    `gorm:"size:200" json:"aksi"`
	StatusCode int       `json:"statusCode"`
	IP         string    `gorm:"size:64" json:"ip"`
	UserAgent  string    `gorm:"size:255" json:"userAgent"`
	Waktu      time.Time `gorm:"index" json:"waktu"`
}

func (AktivitasPengguna) TableName() string { return "aktivitas_pengguna" }
