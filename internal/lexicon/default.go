package lexicon

// Default returns the built-in lexicon for risk-assessment asset names.
// It covers compound technical nouns, role phrases, document types, service
// phrases and the vendor/product names that show up in asset inventories.
func Default() *Lexicon {
	return New([]Entry{
		// Device compounds. These are the phrases a generic segmenter tends
		// to split badly ("防火牆設備" → "防火" + "牆" + "設備").
		{Phrase: "防火牆設備", Decomposition: []string{"防火牆", "設備"}},
		{Phrase: "網路設備", Decomposition: []string{"網路", "設備"}},
		{Phrase: "儲存設備", Decomposition: []string{"儲存", "設備"}},
		{Phrase: "監控設備", Decomposition: []string{"監控", "設備"}},
		{Phrase: "安全設備", Decomposition: []string{"安全", "設備"}},

		// Database and system compounds.
		{Phrase: "資料庫管理系統", Decomposition: []string{"資料庫", "管理系統"}},
		{Phrase: "備份管理系統", Decomposition: []string{"備份", "管理系統"}},
		{Phrase: "監控管理系統", Decomposition: []string{"監控", "管理系統"}},
		{Phrase: "資料庫系統", Decomposition: []string{"資料庫", "系統"}},
		{Phrase: "網路防火牆", Decomposition: []string{"網路", "防火牆"}},
		{Phrase: "管理系統", Decomposition: []string{"管理", "系統"}},
		{Phrase: "作業系統"},
		{Phrase: "應用程式"},
		{Phrase: "資料庫"},
		{Phrase: "防火牆"},
		{Phrase: "伺服器"},
		{Phrase: "虛擬機"},

		// People and roles.
		{Phrase: "內部人員", Decomposition: []string{"內部", "人員"}},
		{Phrase: "外部人員", Decomposition: []string{"外部", "人員"}},
		{Phrase: "系統管理員", Decomposition: []string{"系統", "管理員"}},
		{Phrase: "承辦人"},
		{Phrase: "管理員"},
		{Phrase: "使用者"},

		// Document types.
		{Phrase: "作業文件", Decomposition: []string{"作業", "文件"}},
		{Phrase: "電子紀錄", Decomposition: []string{"電子", "紀錄"}},
		{Phrase: "程序文件", Decomposition: []string{"程序", "文件"}},
		{Phrase: "技術文件", Decomposition: []string{"技術", "文件"}},
		{Phrase: "操作手冊", Decomposition: []string{"操作", "手冊"}},

		// Services.
		{Phrase: "網路服務", Decomposition: []string{"網路", "服務"}},
		{Phrase: "雲端服務", Decomposition: []string{"雲端", "服務"}},
		{Phrase: "應用服務", Decomposition: []string{"應用", "服務"}},
		{Phrase: "資料服務", Decomposition: []string{"資料", "服務"}},

		// Physical locations and media.
		{Phrase: "可攜式儲存媒體", Decomposition: []string{"可攜式", "儲存媒體"}},
		{Phrase: "儲存媒體", Decomposition: []string{"儲存", "媒體"}},
		{Phrase: "資料中心", Decomposition: []string{"資料", "中心"}},
		{Phrase: "辦公室"},
		{Phrase: "會議室"},
		{Phrase: "機房"},

		// Vendor / product names.
		{Phrase: "SQL Server", Decomposition: []string{"SQL", "Server"}},
		{Phrase: "MySQL"},
		{Phrase: "Oracle"},
		{Phrase: "Windows"},
		{Phrase: "Linux"},
		{Phrase: "Microsoft"},
		{Phrase: "VMware"},
		{Phrase: "Docker"},
		{Phrase: "API"},
		{Phrase: "SOP"},
		{Phrase: "ERP"},
		{Phrase: "CRM"},
	})
}
