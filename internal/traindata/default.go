package traindata

// Default returns the built-in training set used when no CSV is supplied.
// Categories appear in the canonical order 軟體, 實體, 資料, 人員, 服務.
func Default() []Row {
	return []Row{
		{"資料庫管理系統", "軟體"},
		{"MySQL資料庫", "軟體"},
		{"Oracle資料庫", "軟體"},
		{"SQL Server資料庫", "軟體"},
		{"Windows作業系統", "軟體"},
		{"Linux作業系統", "軟體"},
		{"防毒軟體", "軟體"},
		{"ERP系統", "軟體"},
		{"CRM系統", "軟體"},
		{"人事管理系統", "軟體"},
		{"會計系統", "軟體"},
		{"財務管理系統", "軟體"},
		{"電子郵件系統", "軟體"},
		{"開發工具", "軟體"},
		{"版本控制系統", "軟體"},
		{"VMware虛擬化平台", "軟體"},
		{"備份軟體", "軟體"},
		{"辦公室應用軟體", "軟體"},

		{"防火牆設備", "實體"},
		{"網路設備", "實體"},
		{"交換器", "實體"},
		{"路由器", "實體"},
		{"伺服器主機", "實體"},
		{"儲存設備", "實體"},
		{"可攜式儲存媒體", "實體"},
		{"不斷電系統", "實體"},
		{"機房空調設備", "實體"},
		{"監視器", "實體"},
		{"門禁設備", "實體"},
		{"筆記型電腦", "實體"},
		{"桌上型電腦", "實體"},
		{"印表機", "實體"},
		{"網路線路", "實體"},

		{"作業文件", "資料"},
		{"電子紀錄", "資料"},
		{"程序文件", "資料"},
		{"技術文件", "資料"},
		{"操作手冊", "資料"},
		{"客戶資料", "資料"},
		{"人事資料", "資料"},
		{"財務報表", "資料"},
		{"合約文件", "資料"},
		{"會議紀錄", "資料"},
		{"系統設定檔", "資料"},
		{"稽核紀錄", "資料"},
		{"備份資料", "資料"},

		{"內部人員", "人員"},
		{"外部人員", "人員"},
		{"系統管理員", "人員"},
		{"資料庫管理員", "人員"},
		{"網路管理員", "人員"},
		{"開發人員", "人員"},
		{"維護廠商人員", "人員"},
		{"約聘人員", "人員"},
		{"資安人員", "人員"},

		{"網路服務", "服務"},
		{"雲端服務", "服務"},
		{"應用服務", "服務"},
		{"資料服務", "服務"},
		{"電信服務", "服務"},
		{"網站代管服務", "服務"},
		{"委外維護服務", "服務"},
		{"憑證服務", "服務"},
	}
}
