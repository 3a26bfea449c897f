package profile

// The six publication variants, expressed as data. The prompt templates
// carry the editorial policy (selection counts, tone, section quotas,
// closing line); the engine only substitutes values into them.

var builtinOrder = []string{
	"morning-briefing",
	"economy-morning",
	"evening-briefing",
	"local-goodnews",
	"sports-flash",
	"world-digest",
}

var builtins = map[string]*Profile{
	"morning-briefing": {
		Name: "morning-briefing",
		Feeds: []FeedSourceSpec{
			{Name: "연합뉴스", Endpoint: "https://www.yonhapnewstv.co.kr/browse/feed/", ItemCap: 5},
			{Name: "YTN", Endpoint: "https://www.ytn.co.kr/rss/headline.xml", ItemCap: 5},
			{Name: "KBS", Endpoint: "https://world.kbs.co.kr/rss/rss_news.htm?lang=k", ItemCap: 5},
			{Name: "MBC", Endpoint: "https://imnews.imbc.com/rss/news/news_00.xml", ItemCap: 5},
		},
		PromptTemplate: `오늘({{.Date}} {{.Weekday}}) 주요 뉴스를 바탕으로 아침 뉴스 브리핑 기사를 작성해주세요.

[수집된 뉴스]
{{.Entries}}

작성 규칙:
1. 제목: "오늘의 주요뉴스 ({{.Date}})" 형식
2. 중요한 뉴스 5-7개를 선별해서 요약
3. 각 뉴스는 2-3문장으로 핵심만
4. 친근하지만 신뢰감 있는 톤
5. HTML 형식으로 작성 (h3, p, ul 태그 사용)
6. 마지막에 "여주굿뉴스가 전해드렸습니다" 마무리

기사 본문만 출력하세요.`,
		EntryStyle:  EntryNumbered,
		OutputMode:  OutputHTML,
		MaxTokens:   2000,
		TitleFormat: "오늘의 주요뉴스 (%s)",
	},

	"economy-morning": {
		Name: "economy-morning",
		Feeds: []FeedSourceSpec{
			{Name: "한국경제", Endpoint: "https://www.hankyung.com/feed/economy", ItemCap: 6},
			{Name: "매일경제", Endpoint: "https://www.mk.co.kr/rss/30100041/", ItemCap: 6},
			{Name: "연합뉴스", Endpoint: "https://www.yonhapnewstv.co.kr/category/news/economy/feed/", ItemCap: 4},
		},
		Quotas: []SectionQuota{
			{Section: "금융·증시", Count: 3},
			{Section: "부동산", Count: 2},
			{Section: "산업·기업", Count: 2},
		},
		PromptTemplate: `오늘({{.Date}} {{.Weekday}}) 경제 뉴스를 바탕으로 아침 경제 브리핑 기사를 작성해주세요.

[수집된 뉴스]
{{.Entries}}

[오늘의 시장 지표]
{{.Aux.market}}

작성 규칙:
1. 섹션별 기사 수: {{.Quotas}}
2. 각 뉴스는 2-3문장으로 핵심만, 수치는 정확하게 인용
3. 신뢰감 있는 경제 전문 톤
4. HTML 형식으로 작성 (h3, p, ul 태그 사용)
5. 기사 서두에 시장 지표를 한 줄로 언급

기사 본문만 출력하세요.`,
		EntryStyle:  EntryNumbered,
		OutputMode:  OutputHTML,
		MaxTokens:   2500,
		TitleFormat: "오늘의 경제브리핑 (%s)",
		AuxKeys:     []string{"market"},
		CategoryIDs: []int{12},
		Notify:      true,
	},

	"evening-briefing": {
		Name: "evening-briefing",
		Feeds: []FeedSourceSpec{
			{Name: "연합뉴스", Endpoint: "https://www.yonhapnewstv.co.kr/browse/feed/", ItemCap: 8},
			{Name: "YTN", Endpoint: "https://www.ytn.co.kr/rss/headline.xml", ItemCap: 8},
		},
		PromptTemplate: `오늘({{.Date}} {{.Weekday}}) 하루를 정리하는 저녁 뉴스 브리핑을 작성해주세요.

[수집된 뉴스]
{{.Entries}}

작성 규칙:
1. 하루를 마무리하는 차분한 톤
2. 중요한 뉴스 4-5개를 선별해서 요약
3. 각 뉴스는 2문장 이내로 간결하게
4. 일반 텍스트로 작성 (HTML 태그 사용 금지)
5. 마지막에 "편안한 저녁 되세요" 마무리

기사 본문만 출력하세요.`,
		EntryStyle:  EntryLabeled,
		OutputMode:  OutputText,
		MaxTokens:   1500,
		TitleFormat: "저녁 뉴스 정리 (%s)",
	},

	"local-goodnews": {
		Name: "local-goodnews",
		Feeds: []FeedSourceSpec{
			{Name: "여주시", Endpoint: "https://www.yeoju.go.kr/rss/news.xml", ItemCap: 5},
			{Name: "경기일보", Endpoint: "https://www.kyeonggi.com/rss/clickTop.xml", ItemCap: 5},
			{Name: "KBS", Endpoint: "https://world.kbs.co.kr/rss/rss_news.htm?lang=k", ItemCap: 5},
		},
		Quotas: []SectionQuota{
			{Section: "지역 소식", Count: 3},
			{Section: "훈훈한 뉴스", Count: 2},
		},
		PromptTemplate: `오늘({{.Date}} {{.Weekday}}) 뉴스 중 밝고 긍정적인 소식을 골라 기사를 작성해주세요.

[수집된 뉴스]
{{.Entries}}

작성 규칙:
1. 섹션별 기사 수: {{.Quotas}}
2. 밝고 따뜻한 톤, 사건·사고는 제외
3. 각 뉴스는 2-3문장으로 핵심만
4. HTML 형식으로 작성 (h3, p 태그 사용)
5. 마지막에 "여주굿뉴스가 전해드렸습니다" 마무리

기사 본문만 출력하세요.`,
		EntryStyle:      EntryNumbered,
		OutputMode:      OutputHTML,
		MaxTokens:       2000,
		TitleFormat:     "오늘의 굿뉴스 (%s)",
		BannerURL:       "https://yeojugoodnews.com/wp-content/uploads/banner-goodnews.jpg",
		CategoryIDs:     []int{7},
		MediaID:         214,
		ExpandSummaries: true,
	},

	"sports-flash": {
		Name: "sports-flash",
		Feeds: []FeedSourceSpec{
			{Name: "연합뉴스 스포츠", Endpoint: "https://www.yonhapnewstv.co.kr/category/news/sports/feed/", ItemCap: 7},
			{Name: "SPOTV", Endpoint: "https://www.spotvnews.co.kr/rss/allArticle.xml", ItemCap: 7},
			{Name: "스포츠서울", Endpoint: "https://www.sportsseoul.com/rss/all.xml", ItemCap: 7},
		},
		PromptTemplate: `오늘({{.Date}} {{.Weekday}}) 스포츠 소식을 바탕으로 짧은 스포츠 브리핑을 작성해주세요.

[수집된 뉴스]
{{.Entries}}

작성 규칙:
1. 경기 결과와 주요 기록 중심으로 5개 내외 선별
2. 각 소식은 1-2문장, 스코어는 정확하게
3. 경쾌하고 활기찬 톤
4. HTML 형식으로 작성 (h3, p 태그 사용)

기사 본문만 출력하세요.`,
		EntryStyle:  EntryNumbered,
		OutputMode:  OutputHTML,
		MaxTokens:   1500,
		TitleFormat: "오늘의 스포츠 (%s)",
		CategoryIDs: []int{21},
		Notify:      true,
	},

	"world-digest": {
		Name: "world-digest",
		Feeds: []FeedSourceSpec{
			{Name: "BBC", Endpoint: "https://feeds.bbci.co.uk/news/world/rss.xml", ItemCap: 5},
			{Name: "로이터", Endpoint: "https://www.reutersagency.com/feed/?best-topics=top-news", ItemCap: 5},
			{Name: "연합뉴스 국제", Endpoint: "https://www.yonhapnewstv.co.kr/category/news/international/feed/", ItemCap: 5},
		},
		PromptTemplate: `오늘({{.Date}} {{.Weekday}}) 국제 뉴스를 바탕으로 세계 소식 다이제스트를 작성해주세요.

[수집된 뉴스]
{{.Entries}}

작성 규칙:
1. 지역별로 고르게 5-6개 선별 (외신 기사는 한국어로 번역해서 요약)
2. 각 뉴스는 2-3문장으로 배경까지 간단히
3. 차분하고 객관적인 톤
4. HTML 형식으로 작성 (h3, p 태그 사용)
5. 마지막에 "세계는 지금, 여주굿뉴스였습니다" 마무리

기사 본문만 출력하세요.`,
		EntryStyle:      EntryLabeled,
		OutputMode:      OutputHTML,
		MaxTokens:       2200,
		TitleFormat:     "세계는 지금 (%s)",
		BannerURL:       "https://yeojugoodnews.com/wp-content/uploads/banner-world.jpg",
		ExpandSummaries: true,
	},
}
