package caption

var catVocabulary = &Vocabulary{
	Openers: []string{
		"休憩のお供に、猫を一匙",
		"気持ちを整える一枚",
		"画面の隅に、やさしい気配",
		"集中が切れる前に、猫の処方箋",
		"本日の看板猫をお届け",
		"世界がざわつく前に深呼吸",
		"作業のBGMに合う猫、見つけました",
		"午後を救うもふもふ速報",
		"心拍数を下げに来た猫です",
		"今日も小さな王さまは健在",
		"猫が通ります。道をあけてください",
		"かわいさでリロード",
	},
	Scenes: []string{
		"窓辺", "机の上", "ひざの上", "日だまり", "廊下の角", "ソファの端",
		"涼しい床", "カーテンの影", "玄関マット", "夕暮れの光", "雨音のそば", "エアコンの風下",
	},
	Adverbs: []string{
		"しれっと", "堂々と", "こっそり", "誇らしげに", "のびのびと", "気ままに",
		"やわらかく", "静かに", "大胆に", "あくまで自然体で",
	},
	Verbs: []string{
		"見守る", "寝落ちする", "鎮座する", "のびる", "丸まる", "主張する",
		"世界を征服する顔をする", "視線をよこす", "毛づくろいする", "あくびする",
	},
	OneLiners: []string{
		"可愛いの暴力。", "平和はここにあった。", "今日は勝ち。", "尊みが深い。",
		"作業効率、たぶん上がる。", "これは反則。", "語彙力が溶ける。", "秒で癒やす。",
	},
	QAs: []string{
		"問：可愛いは正義？ 答：はい。",
		"問：猫は正義？ 答：つよい。",
		"問：休憩の最適解？ 答：猫。",
	},
	Closers: []string{
		"どうぞ受け取って。", "そっと置いておきます。", "深呼吸してからどうぞ。", "今日も良い日になる。",
	},
	HashtagSets: [][]string{
		{"#TheCatAPI", "#猫"},
		{"#TheCatAPI", "#ねこ"},
		{"#TheCatAPI", "#CatLovers"},
		{"#TheCatAPI"},
		{"#TheCatAPI", "#cat"},
	},
}

// classicVocabulary swaps the one-liners for a fixed list of complete lines.
var classicVocabulary = &Vocabulary{
	Openers: catVocabulary.Openers,
	Scenes:  catVocabulary.Scenes,
	Adverbs: catVocabulary.Adverbs,
	Verbs:   catVocabulary.Verbs,
	OneLiners: []string{
		"今日の猫をお届けします。",
		"ひと休みしませんか。",
		"猫成分を補給してください。",
		"この顔に免じて許して。",
		"今日も世界は猫で回っている。",
		"見ているだけで肩の力が抜ける。",
		"本日も異常なし、かわいい。",
		"眺めて三秒、元気が出る。",
		"お疲れさまの代わりに猫を。",
		"深呼吸、そして猫。",
	},
	QAs:         catVocabulary.QAs,
	Closers:     catVocabulary.Closers,
	HashtagSets: catVocabulary.HashtagSets,
}
