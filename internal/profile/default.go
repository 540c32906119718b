package profile

// Categories in canonical order. Scoring and tie-breaking iterate this
// order, so argmax ties resolve to the earlier category deterministically.
const (
	CategorySoftware  = "軟體"
	CategoryPhysical  = "實體"
	CategoryData      = "資料"
	CategoryPersonnel = "人員"
	CategoryService   = "服務"
)

// Defaults returns the built-in profiles for the five asset categories, in
// canonical order. Hardware-style assets (devices, servers) classify under
// 實體.
func Defaults() []Profile {
	return []Profile{
		{
			Category: CategorySoftware,
			Keywords: Tiers{
				Strong: []string{
					"系統", "軟體", "應用程式", "資料庫", "程式", "語言", "平台", "框架",
					"資料庫管理系統", "管理系統", "MySQL", "Oracle", "SQL Server", "Windows", "Linux",
				},
				Medium: []string{"server", "sql", "unix", "java", "python", ".net", "asp", "ERP", "CRM"},
				Weak:   []string{"管理", "開發", "應用"},
			},
			Patterns: []string{
				`.*系統$`, `.*軟體$`, `.*程式.*`, `.*資料庫.*`,
				`.*(windows|linux|unix|sql|mysql|oracle).*`,
			},
			Rules: Rules{
				IncludeReserved: []string{
					"資料庫管理系統", "作業系統", "MySQL", "Oracle", "SQL Server", "Windows", "Linux",
				},
				ExcludeCompound: []CompoundRule{{Reserved: "防火牆", Contains: "設備"}},
			},
		},
		{
			Category: CategoryPhysical,
			Keywords: Tiers{
				Strong: []string{
					"設備", "硬體", "伺服器", "主機", "電腦", "防火牆設備", "網路設備",
					"儲存設備", "監控設備", "安全設備", "實體", "環境", "設施", "場所",
					"機房", "辦公室", "會議室", "資料中心",
				},
				Medium: []string{"交換器", "路由器", "防火牆", "印表機", "儲存", "建築", "場地", "可攜式儲存媒體", "媒體"},
				Weak:   []string{"機器", "終端", "裝置", "地點"},
			},
			Patterns: []string{
				`.*設備$`, `.*主機$`, `.*伺服器.*`, `.*電腦.*`, `.*環境.*`, `.*設施.*`,
				`.*場所.*`, `.*(server|交換器|路由器).*`,
			},
			Rules: Rules{
				IncludeReserved: []string{
					"防火牆設備", "網路設備", "儲存設備", "監控設備", "安全設備",
					"可攜式儲存媒體", "儲存媒體", "機房",
				},
				IncludeCompound: []CompoundRule{{Reserved: "防火牆", Contains: "設備"}},
			},
		},
		{
			Category: CategoryData,
			Keywords: Tiers{
				Strong: []string{
					"資料", "文件", "檔案", "紀錄", "合約", "文檔", "作業文件",
					"電子紀錄", "程序文件", "技術文件", "操作手冊",
				},
				Medium: []string{"作業", "程序", "SOP", "備份", "日誌", "原始碼", "手冊"},
				Weak:   []string{"資訊", "內容", "報告"},
			},
			Patterns: []string{
				`.*文件.*`, `.*檔案.*`, `.*紀錄.*`, `.*合約.*`,
				`.*(sop|備份|日誌|原始碼).*`,
			},
			Rules: Rules{
				IncludeReserved: []string{"作業文件", "電子紀錄", "程序文件", "技術文件", "操作手冊"},
				IncludeContains: []string{"合約", "SOP"},
			},
		},
		{
			Category: CategoryPersonnel,
			Keywords: Tiers{
				Strong: []string{
					"人員", "員工", "職員", "使用者", "用戶", "管理員",
					"內部人員", "外部人員", "承辦人",
				},
				Medium: []string{"內部", "外部", "客戶", "廠商", "委外"},
				Weak:   []string{"工作人員"},
			},
			Patterns: []string{
				`.*人員$`, `.*員工.*`, `.*使用者.*`, `.*管理員.*`, `承辦人`,
			},
			Rules: Rules{
				IncludeReserved: []string{"內部人員", "外部人員", "系統管理員", "承辦人"},
				ExcludeReserved: []string{"作業文件", "電子紀錄", "程序文件", "技術文件"},
				ExcludeContains: []string{"文件", "檔案", "紀錄", "資料庫"},
			},
		},
		{
			Category: CategoryService,
			Keywords: Tiers{
				Strong: []string{"服務", "應用服務", "系統服務", "網路服務", "雲端服務", "資料服務"},
				Medium: []string{"api", "web", "網站", "入口網站", "應用"},
				Weak:   []string{"功能", "支援", "平台"},
			},
			Patterns: []string{
				`.*服務.*`, `.*(api|web|網站).*`,
			},
			Rules: Rules{
				IncludeReserved: []string{"網路服務", "雲端服務", "應用服務", "資料服務"},
			},
		},
	}
}
