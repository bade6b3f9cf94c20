package vocab

import "regexp"

// Default returns the built-in vocabulary. Each call returns a fresh value.
func Default() *Vocabulary {
	return &Vocabulary{
		Labels: Labels{
			Name:        []string{"氏名", "氏 名", "氏　名", "名前", "名　前", "フリガナ", "姓名", "Name"},
			Age:         []string{"年齢", "年龄", "年令", "歳", "才", "Age", "年　齢", "生年月", "満"},
			Gender:      []string{"性別", "性别", "Gender", "性　別"},
			Birth:       []string{"生年月日", "生年月", "生年", "誕生日", "出生日期", "出生年月日", "Birth Date", "Birthday", "DOB", "Date of Birth"},
			Nationality: []string{"国籍", "出身国", "出身地", "Nationality", "国　籍"},
			Experience: []string{
				"経験年数", "実務経験", "開発経験", "ソフト関連業務経験年数", "IT経験", "業務経験",
				"経験", "実務年数", "Experience", "エンジニア経験", "経験年月", "職歴", "IT経験年数",
				"コンピュータソフトウエア関連業務",
			},
			Arrival:   []string{"来日", "渡日", "入国", "日本滞在年数", "滞在年数", "在日年数", "来日年", "来日時期", "来日年月", "来日年度"},
			Japanese:  []string{"日本語", "日語", "JLPT", "日本語能力", "語学力", "言語能力", "日本語レベル", "Japanese"},
			Education: []string{"学歴", "学校", "大学", "卒業", "専門学校", "高校", "最終学歴"},
			Project:   []string{"プロジェクト", "案件", "開発", "システム", "業務", "期間", "作業"},
			Personal:  []string{"氏名", "性別", "年齢", "最寄", "住所", "男", "女"},
		},

		Nationalities: []string{
			"中国", "日本", "韓国", "ベトナム", "フィリピン", "インド", "ネパール", "アメリカ", "ブラジル",
			"台湾", "タイ", "インドネシア", "バングラデシュ", "スリランカ", "ミャンマー", "カンボジア",
			"ラオス", "モンゴル",
		},

		NameDenylist:      nameDenylist,
		RelationshipWords: []string{"配偶者", "配偶", "夫", "妻", "独身", "既婚", "未婚", "家族", "技術者", "開発者", "エンジニア", "プログラマー", "システムエンジニア"},

		Skills:         skills,
		NoSplitSkills:  noSplitSkills,
		SkillSynonyms:  skillSynonyms(),
		SkillExcludes:  skillExcludes(),
		NonSkillWords:  []string{"設計", "製造", "試験", "テスト", "管理", "経験", "担当", "役割", "フェーズ", "開発", "業務", "システム", "構築", "対応"},
		TechHeaders:    []string{"言語", "ツール", "技術", "スキル", "DB", "OS", "フレームワーク", "開発環境", "プログラミング", "機種", "Git", "SVN", "バージョン管理"},
		ColumnEnd:      []string{"プロジェクト", "案件", "経歴", "実績", "期間", "業務内容", "担当", "概要", "備考", "その他", "職歴", "経験", "資格"},
		SkillMarks:     "◎○△×★●◯▲※・-",

		Phases: []string{
			"基本設計", "詳細設計", "製造", "単体テスト", "結合テスト", "総合テスト", "運用保守",
			"要件定義", "基本设计", "详细设计", "単体試験", "結合試験", "総合試験", "運用", "保守", "要件", "定義",
		},
		PhaseCanonical: map[string]string{
			"要件定義": "要件定義", "要件": "要件定義", "定義": "要件定義",
			"基本設計": "基本設計", "基本设计": "基本設計",
			"詳細設計": "詳細設計", "详细设计": "詳細設計",
			"製造":   "製造",
			"単体テスト": "単体テスト", "単体試験": "単体テスト",
			"結合テスト": "結合テスト", "結合試験": "結合テスト",
			"総合テスト": "総合テスト", "総合試験": "総合テスト",
			"運用保守": "運用保守", "運用": "運用保守", "保守": "運用保守",
		},
		PhaseOrder: []string{"要件定義", "基本設計", "詳細設計", "製造", "単体テスト", "結合テスト", "総合テスト", "運用保守"},
		WorkMarks:  []string{"●", "◯", "○", "◎"},

		Roles: []string{"PM", "PL", "SL", "TL", "BSE", "SE", "PG"},
		RoleRank: map[string]float64{
			"PM": 6, "PL": 5, "SL": 4, "TL": 3, "BSE": 2.5, "SE": 2, "PG": 1,
		},
		RoleNames: map[string]string{
			"プロジェクトマネージャー": "PM", "プロジェクトマネジャー": "PM", "プロジェクト管理": "PM",
			"プロジェクトリーダー": "PL", "プロジェクトリーダ": "PL",
			"サブリーダー": "SL", "サブリーダ": "SL",
			"チームリーダー": "TL", "チームリーダ": "TL",
			"ブリッジSE": "BSE", "ブリッジエンジニア": "BSE",
			"システムエンジニア": "SE",
			"プログラマー": "PG", "プログラマ": "PG",
			"プロマネ": "PM", "副リーダー": "SL",
			"Project Manager": "PM", "Project Leader": "PL", "Sub Leader": "SL", "Team Leader": "TL",
			"Bridge System Engineer": "BSE", "Bridge SE": "BSE", "System Engineer": "SE", "Programmer": "PG",
		},
		RoleHeaders:  []string{"役割", "役　割", "担当", "ポジション", "Position", "Role", "職種", "職位"},
		ProjectWords: []string{"設計", "開発", "テスト", "構築", "保守", "運用", "製造", "プロジェクト"},
	}
}

var nameDenylist = []string{
	"氏名", "名前", "フリガナ", "ふりがな", "性別", "年齢", "国籍", "男", "女", "歳", "才",
	"経験", "資格", "学歴", "住所", "電話", "メール", "現在", "スキルシート", "履歴書", "職務経歴書",
	"技術", "年月", "生年月", "得意分野", "専門分野", "技術分野", "開発経験", "プロジェクト経験",
	"業務経験", "実務経験", "担当業務", "参画プロジェクト", "開発言語", "使用技術", "開発環境",
	"作業内容", "業務内容", "担当工程", "役割", "職種", "ポジション", "自己PR", "アピールポイント",
	"強み", "弱み", "志望動機", "転職理由", "希望条件", "資格・免許", "語学力", "日本語レベル",
	"JLPT", "日本語能力試験", "趣味", "特技", "hobby", "その他", "備考", "特記事項", "コメント",
	"概要", "詳細", "説明", "期間", "時期", "年月日", "プロジェクト名", "案件名", "システム名",
	"サービス名", "チーム構成", "人数規模", "開発手法", "開発プロセス", "OS", "DB", "言語", "FW",
	"ツール", "ミドルウェア", "大学", "学校", "研究科", "学院", "専門学校", "高校", "中学校",
	"小学校", "大学院", "学部", "研究室", "博士", "修士", "学士", "卒業", "在学", "専攻", "学科",
	"PhD", "Master", "Bachelor", "MBA", "修了", "取得", "会社名", "企業名", "所属", "部署", "部門",
	"株式会社", "有限会社", "合同会社", "LLC", "Inc", "Corp", "Ltd", "TEL", "電話番号", "FAX",
	"Email", "メールアドレス", "〒", "郵便番号", "最寄駅", "最寄り駅", "写真", "顔写真", "Photo",
	"Image", "印鑑", "印章", "署名", "サイン", "日付", "作成日", "更新日",
	"スキル", "開発", "プロジェクト", "システム", "業務", "担当", "チーム",
}

var skills = []string{
	// languages
	"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "C/C++", "PHP", "Ruby", "Go",
	"Kotlin", "Swift", "Scala", "Rust", "VB.NET", "VB", "VBA", "COBOL", "Perl", "R", "Objective-C",
	"Shell", "Bash", "PowerShell", "SQL", "PL/SQL",
	// web
	"HTML", "HTML5", "CSS", "CSS3", "React", "Vue", "Vue.js", "Angular", "jQuery", "Bootstrap",
	"Webpack", "Sass", "Less", "Ajax", "Next.js", "Nuxt.js",
	// frameworks
	"Spring", "SpringBoot", "SpringMVC", "Struts", "Struts2", "Django", "Flask", "Rails", "Express",
	"Node.js", ".NET", "ASP.NET", "Laravel", "Thymeleaf", "JSF", "JSP", "Servlet", "Hibernate",
	"MyBatis", "JPA", "TERASOLUNA", "OutSystems",
	// databases
	"MySQL", "PostgreSQL", "Oracle", "SQL Server", "MongoDB", "Redis", "DB2", "SQLite", "Access",
	"Sybase", "Aurora", "DynamoDB",
	// cloud and infrastructure
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	// version control and build
	"Git", "GitHub", "GitLab", "SVN", "TortoiseSVN", "Jenkins", "Maven", "Gradle",
	// operating systems
	"Windows", "Linux", "Unix", "Solaris", "Ubuntu", "CentOS", "RedHat", "macOS",
	// servers
	"Apache", "Nginx", "Tomcat", "WebSphere", "JBoss", "IIS", "WebLogic",
	// tools
	"Eclipse", "IntelliJ", "IntelliJ IDEA", "VS Code", "Visual Studio", "Android Studio", "NetBeans",
	"Xcode", "A5M2", "WinMerge", "WinSCP", "Sourcetree", "Postman", "JUnit", "Selenium", "JMeter",
	"Tera Term", "Excel", "Backlog", "Redmine", "Jira", "Confluence",
	// formats and protocols
	"XML", "JSON", "REST", "SOAP",
	// mobile
	"Android", "iOS", "React Native", "Flutter",
}

var noSplitSkills = []string{
	"Visual Studio Code", "VS Code", "Visual Studio", "Android Studio", "IntelliJ IDEA",
	"SQL Server", "Azure SQL Database", "React Native", "Tera Term", "Dynamics 365",
	"AWS Glue", "AWS S3", "AWS Lambda", "AWS EC2", "AWS IAM", "AWS CodeCommit",
	"Spring Boot", "Spring MVC", "Red Hat", "Oracle Database", "Power BI", "Power Apps",
	"Google Cloud", "Node.js", "Vue.js", "React.js", "Next.js", "Nuxt.js", "C/C++", "PL/SQL",
}

func skillSynonyms() map[string]string {
	return map[string]string{
		"java":               "Java",
		"javascript":         "JavaScript",
		"js":                 "JavaScript",
		"typescript":         "TypeScript",
		"ts":                 "TypeScript",
		"python":             "Python",
		"mysql":              "MySQL",
		"postgresql":         "PostgreSQL",
		"postgres":           "PostgreSQL",
		"oracle":             "Oracle",
		"oracle database":    "Oracle",
		"sqlserver":          "SQL Server",
		"ms sql server":      "SQL Server",
		"vscode":             "VS Code",
		"visual studio code": "VS Code",
		"springboot":         "SpringBoot",
		"spring boot":        "SpringBoot",
		"spring mvc":         "SpringMVC",
		"node":               "Node.js",
		"nodejs":             "Node.js",
		"vuejs":              "Vue.js",
		"react.js":           "React",
		"reactjs":            "React",
		"c言語":                "C",
		"cpp":                "C++",
		"csharp":             "C#",
		"c♯":                 "C#",
		"golang":             "Go",
		"k8s":                "Kubernetes",
		"github actions":     "GitHub",
		"intellij idea":      "IntelliJ",
		"red hat":            "RedHat",
		"rhel":               "RedHat",
		"tortoise svn":       "TortoiseSVN",
		"a5:sql mk-2":        "A5M2",
		"a5m2":               "A5M2",
		"teraterm":           "Tera Term",
		"shell script":       "Shell",
		"shellscript":        "Shell",
		"html/css":           "HTML",
	}
}

func skillExcludes() []*regexp.Regexp {
	patterns := []string{
		`^\d{4}[-/]\d{2}[-/]\d{2}`,
		`^\d{2,4}年\d{1,2}月`,
		`\d+人`,
		`人以[下上]`,
		`^(基本|詳細)設計$`,
		`^製造$`,
		`^(単体|結合|総合|運用)(試験|テスト)`,
		`^保守運用$`,
		`^要件定義$`,
		`^(SE|PG|PL|PM|TL|SL|BSE)$`,
		`^管理$`,
		`管理経験`,
		`^教\s*育$`,
		`業務経歴`,
		`プロジェクト`,
		`^その他$`,
		`^過去の`,
		`【.*】`,
		`^携帯$`,
		`(?i)^e-?mail$`,
		`^[A-BD-QS-Z]$`,
		`(?i)^(os|db|dbms|fw|ide)$`,
		`^\d+(\.\d+)?$`,
		`^[\d\s年ヶか月ケ]+$`,
	}
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}
