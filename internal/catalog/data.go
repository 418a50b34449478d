package catalog

const productImage = "https://m.media-amazon.com/images/I/51a0UK8LfBL._AC_SX679_.jpg"

// BannerImage is shared by the hero slot and editorial sections.
const BannerImage = "https://static.accupass.com/eventbanner/2509201427248631952770.jpg"

// HeroBanners feeds the home page hero carousel.
var HeroBanners = []Banner{
	{
		Image:    BannerImage,
		Title:    "承香名品：古法沉香",
		Subtitle: "萃取自然之灵，传世百年之香",
	},
}

var stockVariants = []Variant{
	{ID: "v1", Name: "10克体验装"},
	{ID: "v2", Name: "50克礼盒装", Price: 18800},
	{ID: "v3", Name: "100克尊享装", Price: 36000},
}

var stockReviews = []Review{
	{
		ID:         "r1",
		UserName:   "张**",
		UserAvatar: "https://i.pravatar.cc/150?u=1",
		Rating:     5,
		Content:    "味道非常正，初闻有淡淡的凉意，继而在喉底回甘。包装也很精美，送礼非常有面子。",
		Date:       "2024-01-15",
		Images:     []string{productImage, BannerImage},
	},
	{
		ID:         "r2",
		UserName:   "Li_Art",
		UserAvatar: "https://i.pravatar.cc/150?u=2",
		Rating:     4.8,
		Content:    "油脂丰富，是正宗的沉水级。物流很快，顺丰第二天就到了。",
		Date:       "2023-12-28",
	},
	{
		ID:         "r3",
		UserName:   "王总",
		UserAvatar: "https://i.pravatar.cc/150?u=3",
		Rating:     5,
		Content:    "收藏级别的品质，已经多次回购了。",
		Date:       "2023-11-05",
	},
}

const stockShortDescription = "采自顶级产区，经古法工艺炮制，香韵醇厚，层次丰富。无论是品香、礼佛还是收藏，皆为上选。"

const stockDetailBody = `此款沉香产自核心老产区，历经百年结香，油脂丰盈，纹理清晰自然。

## 古法工艺 · 匠心传承

遵循古法"理香、洗香、炮制"工艺，全程手工操作，最大程度保留了沉香的天然韵味。不添加任何化学香精，安全更安心。

## 鉴赏指南

生闻清雅，上炉后爆发力强。初香清凉甘甜，本香浓郁醇厚，尾香持久回甘，留香时间极长。`

func curated(id, name, brand string, price int64, tag string, rating float64, origin string) Product {
	return Product{
		ID:               id,
		Name:             name,
		Brand:            brand,
		Price:            price,
		Image:            productImage,
		Tag:              tag,
		Rating:           rating,
		Origin:           origin,
		ShortDescription: stockShortDescription,
		DetailBody:       stockDetailBody,
		Variants:         stockVariants,
		Reviews:          stockReviews,
	}
}

var curatedHot = []Product{
	curated("1", "极品达拉干沉香原材", "承香秘藏", 18800, "顶级收藏", 5, "印尼"),
	curated("2", "芽庄白奇楠沉香手串", "百年孤品", 98000, "镇店之宝", 5, "越南"),
	curated("3", "古法醇化芽庄线香", "雅室系列", 1280, "热销", 4.9, "越南"),
	curated("4", "惠安老料沉香油", "精油系列", 3500, "", 4.8, "越南"),
	curated("5", "沉水级加里曼丹香块", "承香秘藏", 8500, "新品", 4.9, "印尼"),
	curated("6", "祥云铜制熏香炉", "香器美学", 2100, "工艺精选", 4.7, "苏州"),
}

var curatedBest = []Product{
	curated("s1", "印尼马泥涝沉香手串", "至臻系列", 15800, "口碑之选", 4.9, "印尼"),
	curated("s2", "柬埔寨菩萨省红土沉香", "产地精选", 12500, "醇厚", 4.8, "柬埔寨"),
	curated("s3", "天然印尼水沉香粉", "篆香必备", 980, "", 4.7, "印尼"),
	curated("s4", "富森红土沉香小盘香", "宁神系列", 2880, "爆款", 5, "越南"),
	curated("s5", "文莱沉水级香插件", "文房雅玩", 6800, "", 4.9, "文莱"),
}

var curatedNew = []Product{
	curated("n1", "入门级芽庄红土线香", "初见系列", 499, "超值", 4.6, "越南"),
	curated("n2", "西马沉香雕件：观音", "工美大师", 15600, "孤品", 4.9, "马来西亚"),
	curated("n3", "文莱老料随形手串", "自然之韵", 7200, "独家", 4.8, "文莱"),
	curated("n4", "承香堂定制电子香炉", "科技香道", 1580, "现代", 4.7, "中国"),
	curated("n5", "顶级苏门答腊香粉", "香篆专用", 880, "纯净", 4.8, "印尼"),
	curated("n6", "承香阁便携式香插", "随身系列", 320, "极简", 4.5, "景德镇"),
}

// Categories is the fixed storefront section list. Order matters: the first
// entry is the default mall selection.
var Categories = []Category{
	{ID: "c1", Name: "沉香原材", Image: BannerImage, Description: "山野灵气，不事雕琢。"},
	{ID: "c2", Name: "香道线香", Image: BannerImage, Description: "静心凝神，香伴左右。"},
	{ID: "c3", Name: "随身佩戴", Image: BannerImage, Description: "千年修得，腕间乾坤。"},
	{ID: "c4", Name: "顶级奇楠", Image: BannerImage, Description: "香中之王，绝迹收藏。"},
	{ID: "c5", Name: "精选香器", Image: BannerImage, Description: "美学载体，香道礼器。"},
	{ID: "c6", Name: "沉香原油", Image: BannerImage, Description: "一滴千金，至臻萃取。"},
}

const academyArticleBody = `沉香，自古以来便被誉为"众香之首"，其香气高雅、深沉，具有安神定气、调和身心的功效。它不仅是一种珍贵的香料，更是中华传统文化中不可或缺的一部分。

## 鉴别真伪的关键

在市场上，沉香的品质良莠不齐，学会鉴别真伪至关重要。首先看其**纹理**，天然沉香的油脂线自然、清晰，无规律可循；其次闻其**香气**，真沉香生闻味道清淡，上炉后香气层次丰富，持久而不刺鼻。

## 沉香的产区分布

沉香主要分布在东南亚地区，其中越南惠安系和印尼星洲系最为著名。惠安系沉香以甜凉为主，香气清雅；星洲系沉香则味浓醇厚，穿透力强。不同的产区，孕育了沉香截然不同的性格。

> "燎沉香，消溽暑。鸟雀呼晴，侵晓窥檐语。" —— 李清照

## 结语

品香，实则是品味人生。在喧嚣的尘世中，点一支沉香，看着轻烟袅袅升起，内心也会随之变得宁静。希望每一位香友，都能在沉香的世界里，找到属于自己的那份安宁。`

// Courses are the bookable academy entries shown on the academy tab.
var Courses = []Post{
	{
		ID:               "course1",
		Title:            "如何鉴别野生沉香与人工香",
		Excerpt:          "从油脂分布、香味层次到燃烧表现，教你一眼识破沉香真伪。",
		Date:             "2024-12-20",
		Image:            BannerImage,
		Category:         "知识课程",
		Body:             academyArticleBody,
		Lecturer:         "沉香雅士",
		CourseTime:       "2024年7月20日 (周六) 14:00-16:00",
		Location:         "上海·承香名品·静安体验店",
		ContactPhone:     "021-66668888",
		ContactEmail:     "course@chengxiang.com",
		RelatedProductID: "1",
		Tips:             []string{"课程包含实物鉴赏环节", "提供专业放大镜与品香炉", "谢绝空降，请提前报名"},
	},
	{
		ID:               "course2",
		Title:            "沉香：贯穿千年的香道文化",
		Excerpt:          "从隋唐皇室到当代雅士，沉香如何成为中国文化的精神象征。",
		Date:             "2024-12-15",
		Image:            BannerImage,
		Category:         "文化讲座",
		Body:             academyArticleBody,
		Lecturer:         "国学大师·王教授",
		CourseTime:       "2024年8月05日 (周日) 13:30-15:30",
		Location:         "北京·承香堂·国子监院",
		ContactPhone:     "010-88886666",
		ContactEmail:     "culture@chengxiang.com",
		RelatedProductID: "2",
		Tips:             []string{"请着中式服装出席", "课程含茶道体验", "名额有限"},
	},
	{
		ID:               "course3",
		Title:            "香篆的使用礼仪与技巧",
		Excerpt:          "一平、一扫、一压，在寂静的时光里寻找内心的平和。",
		Date:             "2024-12-05",
		Image:            BannerImage,
		Category:         "实操课程",
		Body:             academyArticleBody,
		Lecturer:         "静心雅士",
		CourseTime:       "2024年6月15日 - 6月17日 (周末)",
		Location:         "杭州·承香名品·西湖分院",
		ContactPhone:     "0571-88889999",
		ContactEmail:     "academy@chengxiang.com",
		RelatedProductID: "s3",
		Tips:             []string{"请着宽松素雅服装", "课前一小时请勿食用辛辣", "课前请勿喷洒浓烈香水"},
	},
	{
		ID:               "course4",
		Title:            "全球顶级产区：越南芽庄深度游",
		Excerpt:          "探秘奇楠之乡，感受世界最顶级的香道原产地魅力。",
		Date:             "2024-11-28",
		Image:            BannerImage,
		Category:         "游学活动",
		Body:             academyArticleBody,
		Lecturer:         "资深藏家·李先生",
		CourseTime:       "2024年10月1日 - 10月7日",
		Location:         "越南·芽庄 (集合地: 广州白云机场)",
		ContactPhone:     "400-888-6666",
		ContactEmail:     "travel@chengxiang.com",
		RelatedProductID: "s2",
		Tips:             []string{"需持有效护照", "费用包含机票食宿", "名额仅限10人"},
	},
}

// Articles are plain knowledge posts surfaced on the home page study section.
var Articles = []Post{
	{ID: "a1", Title: "入门指南：沉香的分类与等级", Excerpt: "详解惠安系与星洲系的区别，以及沉水、半沉、浮水的等级划分标准。", Date: "2024-03-10", Image: BannerImage, Category: "百科", Body: academyArticleBody},
	{ID: "a2", Title: "香炉的保养与维护", Excerpt: "铜炉、瓷炉、木炉的日常清洁与养护心得，让爱器常用常新。", Date: "2024-03-05", Image: BannerImage, Category: "养护", Body: academyArticleBody},
	{ID: "a3", Title: "沉香与睡眠：安神助眠的奥秘", Excerpt: "科学解析沉香气味分子对神经系统的舒缓作用，打造高质量睡眠环境。", Date: "2024-02-28", Image: BannerImage, Category: "养生", Body: academyArticleBody},
	{ID: "a4", Title: "古代文人与香：苏东坡的沉香情缘", Excerpt: "从诗词歌赋中探寻宋代文人的用香雅趣与精神寄托。", Date: "2024-02-15", Image: BannerImage, Category: "历史", Body: academyArticleBody},
}
