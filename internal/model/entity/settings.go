package entity

// GeneralSettings 通用设置
type GeneralSettings struct {
	CompanyName string `json:"companyName"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

// MailSettings SMTP邮件设置
type MailSettings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}
