package sampledata

import "github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

// records is the compiled-in listing set served whenever the marketplace API is
// unreachable or disabled. Entries are grouped by city, type and purpose.
var records = []domain.Property{
	// الرياض - شقق للبيع
	{
		ID:           "1",
		Title:        "شقة فاخرة في حي النرجس",
		Description:  "شقة حديثة ومميزة في موقع استراتيجي، تتكون من 3 غرف نوم وصالتين مع دورة مياه وحديقة صغيرة. المبنى يحتوي على مواقف سيارات وخدمات أمنية.",
		Price:        1500000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         150,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "2",
		Title:        "شقة راقية في حي الياسمين",
		Description:  "شقة أنيقة بتصميم عصري، 4 غرف نوم و3 دورات مياه مع صالة واسعة ومطبخ مجهز. قريبة من المراكز التجارية والمدارس.",
		Price:        1850000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         180,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "3",
		Title:        "شقة في حي العليا",
		Description:  "شقة متميزة في موقع حيوي، 2 غرفة نوم وصالة مع دورة مياه. مناسبة للعزاب أو العائلات الصغيرة.",
		Price:        950000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         110,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "4",
		Title:        "شقة فاخرة في حي المطار",
		Description:  "شقة حديثة بتصميم راقي، 3 غرف نوم وصالتين مع دورة مياه. المبنى يحتوي على مصعد وخدمات أمنية 24/7.",
		Price:        1200000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         135,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "5",
		Title:        "شقة في حي العريجاء",
		Description:  "شقة مريحة ومناسبة للعائلات، 3 غرف نوم وصالة مع دورة مياه. قريبة من المدارس والمساجد.",
		Price:        1100000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         125,
		Image:        "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الرياض - فيلات للبيع
	{
		ID:           "6",
		Title:        "فيلا راقية في حي الياسمين",
		Description:  "فيلا فاخرة على مساحة كبيرة مع حديقة واسعة وبركة سباحة. تتكون من 5 غرف نوم و4 دورات مياه مع صالة استقبال وصالة طعام.",
		Price:        3500000,
		City:         "الرياض",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         400,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "7",
		Title:        "فيلا في حي النرجس",
		Description:  "فيلا حديثة بتصميم عصري، 6 غرف نوم و5 دورات مياه مع حديقة وملعب أطفال. قريبة من جميع الخدمات.",
		Price:        4200000,
		City:         "الرياض",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         480,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "8",
		Title:        "فيلا فاخرة في حي العليا",
		Description:  "فيلا راقية مع حديقة كبيرة وبركة سباحة. 7 غرف نوم و6 دورات مياه مع قبو ومواقف متعددة.",
		Price:        5500000,
		City:         "الرياض",
		PropertyType: "فيلا",
		Bedrooms:     7,
		Bathrooms:    intPtr(6),
		Area:         600,
		Image:        "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "9",
		Title:        "فيلا في حي الروابي",
		Description:  "فيلا أنيقة بتصميم حديث، 4 غرف نوم و3 دورات مياه مع حديقة صغيرة. مناسبة للعائلات المتوسطة.",
		Price:        2800000,
		City:         "الرياض",
		PropertyType: "فيلا",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         320,
		Image:        "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "10",
		Title:        "فيلا في حي المطار",
		Description:  "فيلا متميزة مع حديقة واسعة، 5 غرف نوم و4 دورات مياه. موقع استراتيجي قريب من المطار.",
		Price:        3200000,
		City:         "الرياض",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         380,
		Image:        "https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الرياض - تاون هاوس للبيع
	{
		ID:           "11",
		Title:        "تاون هاوس في حي الروابي",
		Description:  "تاون هاوس عصري بتصميم حديث، يتكون من 4 غرف نوم و3 دورات مياه مع سطح خاص. مناسب للعائلات الكبيرة.",
		Price:        2200000,
		City:         "الرياض",
		PropertyType: "تاون هاوس",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         280,
		Image:        "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "12",
		Title:        "تاون هاوس في حي النرجس",
		Description:  "تاون هاوس راقي مع حديقة صغيرة، 3 غرف نوم و2 دورات مياه. تصميم عصري ومناسب للعائلات.",
		Price:        1800000,
		City:         "الرياض",
		PropertyType: "تاون هاوس",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         240,
		Image:        "https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "13",
		Title:        "تاون هاوس في حي الياسمين",
		Description:  "تاون هاوس فاخر مع سطح خاص، 5 غرف نوم و4 دورات مياه. موقع ممتاز قريب من الخدمات.",
		Price:        2600000,
		City:         "الرياض",
		PropertyType: "تاون هاوس",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         320,
		Image:        "https://images.unsplash.com/photo-1600607687644-c7171b42498b?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الرياض - شقق للإيجار
	{
		ID:           "14",
		Title:        "شقة للإيجار في حي العليا",
		Description:  "شقة أنيقة في موقع ممتاز، تتكون من 3 غرف نوم وصالتين مع دورة مياه. قريبة من جميع الخدمات.",
		Price:        65000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         140,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "15",
		Title:        "شقة للإيجار في حي النرجس",
		Description:  "شقة مريحة ومناسبة للعائلات، 2 غرفة نوم وصالة مع دورة مياه. قريبة من المدارس والمراكز التجارية.",
		Price:        45000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         100,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "16",
		Title:        "شقة للإيجار في حي الياسمين",
		Description:  "شقة حديثة بتصميم عصري، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        85000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         170,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "17",
		Title:        "شقة للإيجار في حي المطار",
		Description:  "شقة أنيقة في موقع حيوي، 1 غرفة نوم وصالة مع دورة مياه. مناسبة للعزاب.",
		Price:        35000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     1,
		Bathrooms:    intPtr(1),
		Area:         75,
		Image:        "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "18",
		Title:        "شقة للإيجار في حي الروابي",
		Description:  "شقة مريحة ومناسبة، 3 غرف نوم وصالتين مع دورة مياه. قريبة من جميع الخدمات.",
		Price:        55000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         130,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeRent,
	},
	// جدة - شقق للبيع
	{
		ID:           "19",
		Title:        "شقة فاخرة في حي الزهراء",
		Description:  "شقة راقية في موقع ممتاز بجدة، 3 غرف نوم وصالتين مع دورة مياه. قريبة من البحر والمراكز التجارية.",
		Price:        1800000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         160,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "20",
		Title:        "شقة في حي الحمراء",
		Description:  "شقة أنيقة بتصميم حديث، 2 غرفة نوم وصالة مع دورة مياه. قريبة من الكورنيش.",
		Price:        1200000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         115,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "21",
		Title:        "شقة في حي الرويس",
		Description:  "شقة متميزة في موقع حيوي، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        2200000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         190,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "22",
		Title:        "شقة في حي البغدادية",
		Description:  "شقة حديثة ومريحة، 3 غرف نوم وصالتين مع دورة مياه. قريبة من المدارس والمساجد.",
		Price:        1400000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         145,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "23",
		Title:        "شقة في حي الصفا",
		Description:  "شقة فاخرة في موقع استراتيجي، 5 غرف نوم و4 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        2800000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         250,
		Image:        "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800",
		Purpose:      domain.PurposeSale,
	},
	// جدة - فيلات للبيع
	{
		ID:           "24",
		Title:        "فيلا في حي الحمراء",
		Description:  "فيلا فاخرة مع حديقة كبيرة وملعب أطفال. تتكون من 6 غرف نوم و5 دورات مياه مع قبو ومواقف متعددة.",
		Price:        4800000,
		City:         "جدة",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         550,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "25",
		Title:        "فيلا في حي الزهراء",
		Description:  "فيلا راقية قريبة من البحر، 5 غرف نوم و4 دورات مياه مع بركة سباحة وحديقة واسعة.",
		Price:        5200000,
		City:         "جدة",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         480,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "26",
		Title:        "فيلا في حي الرويس",
		Description:  "فيلا حديثة بتصميم عصري، 7 غرف نوم و6 دورات مياه مع حديقة وملعب أطفال.",
		Price:        6200000,
		City:         "جدة",
		PropertyType: "فيلا",
		Bedrooms:     7,
		Bathrooms:    intPtr(6),
		Area:         650,
		Image:        "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "27",
		Title:        "فيلا في حي الصفا",
		Description:  "فيلا أنيقة مع حديقة كبيرة، 4 غرف نوم و3 دورات مياه. موقع ممتاز قريب من الكورنيش.",
		Price:        3800000,
		City:         "جدة",
		PropertyType: "فيلا",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         360,
		Image:        "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "28",
		Title:        "فيلا في حي البغدادية",
		Description:  "فيلا متميزة مع بركة سباحة، 6 غرف نوم و5 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        4500000,
		City:         "جدة",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         520,
		Image:        "https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=800",
		Purpose:      domain.PurposeSale,
	},
	// جدة - شقق للإيجار
	{
		ID:           "29",
		Title:        "شقة للإيجار في حي الزهراء",
		Description:  "شقة مريحة ومناسبة للعائلات، تتكون من غرفتين نوم مع صالة ودورة مياه. قريبة من المدارس والمراكز التجارية.",
		Price:        45000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         100,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "30",
		Title:        "شقة للإيجار في حي الحمراء",
		Description:  "شقة أنيقة قريبة من الكورنيش، 3 غرف نوم وصالتين مع دورة مياه. موقع ممتاز.",
		Price:        70000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         150,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "31",
		Title:        "شقة للإيجار في حي الرويس",
		Description:  "شقة حديثة ومريحة، 1 غرفة نوم وصالة مع دورة مياه. مناسبة للعزاب.",
		Price:        38000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     1,
		Bathrooms:    intPtr(1),
		Area:         80,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "32",
		Title:        "شقة للإيجار في حي الصفا",
		Description:  "شقة فاخرة في موقع ممتاز، 4 غرف نوم و3 دورات مياه. قريبة من جميع الخدمات.",
		Price:        90000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         180,
		Image:        "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "33",
		Title:        "شقة للإيجار في حي البغدادية",
		Description:  "شقة مريحة ومناسبة، 2 غرفة نوم وصالة مع دورة مياه. قريبة من المدارس.",
		Price:        50000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         105,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeRent,
	},
	// الدمام - شقق للبيع
	{
		ID:           "34",
		Title:        "شقة في حي الفيصلية",
		Description:  "شقة حديثة ومميزة في الدمام، 3 غرف نوم وصالتين مع دورة مياه. قريبة من المراكز التجارية.",
		Price:        1300000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         140,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "35",
		Title:        "شقة في حي الشاطئ",
		Description:  "شقة راقية قريبة من البحر، 2 غرفة نوم وصالة مع دورة مياه. موقع ممتاز.",
		Price:        1100000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         120,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "36",
		Title:        "شقة في حي العدامة",
		Description:  "شقة أنيقة بتصميم عصري، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        1700000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         175,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "37",
		Title:        "شقة في حي النزهة",
		Description:  "شقة مريحة ومناسبة، 3 غرف نوم وصالتين مع دورة مياه. قريبة من المدارس.",
		Price:        1250000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         135,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الدمام - فيلات للبيع
	{
		ID:           "38",
		Title:        "فيلا في حي الفيصلية",
		Description:  "فيلا فاخرة مع حديقة واسعة، 5 غرف نوم و4 دورات مياه. موقع استراتيجي.",
		Price:        3200000,
		City:         "الدمام",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         420,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "39",
		Title:        "فيلا في حي الشاطئ",
		Description:  "فيلا راقية قريبة من البحر، 6 غرف نوم و5 دورات مياه مع بركة سباحة.",
		Price:        4800000,
		City:         "الدمام",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         520,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "40",
		Title:        "فيلا في حي العدامة",
		Description:  "فيلا حديثة بتصميم عصري، 4 غرف نوم و3 دورات مياه مع حديقة.",
		Price:        2800000,
		City:         "الدمام",
		PropertyType: "فيلا",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         350,
		Image:        "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الدمام - شقق للإيجار
	{
		ID:           "41",
		Title:        "شقة للإيجار في حي الفيصلية",
		Description:  "شقة مريحة ومناسبة، 2 غرفة نوم وصالة مع دورة مياه. قريبة من الخدمات.",
		Price:        40000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         95,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "42",
		Title:        "شقة للإيجار في حي الشاطئ",
		Description:  "شقة أنيقة قريبة من البحر، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        60000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         145,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المدينة المنورة - شقق للبيع
	{
		ID:           "43",
		Title:        "شقة في حي قباء",
		Description:  "شقة فاخرة قريبة من مسجد قباء، 3 غرف نوم وصالتين مع دورة مياه. موقع مميز.",
		Price:        1400000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         150,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "44",
		Title:        "شقة في حي العالية",
		Description:  "شقة راقية في موقع استراتيجي، 2 غرفة نوم وصالة مع دورة مياه. قريبة من المسجد النبوي.",
		Price:        1150000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         125,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "45",
		Title:        "شقة في حي العوالي",
		Description:  "شقة حديثة ومريحة، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        1900000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         185,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	// المدينة المنورة - فيلات للبيع
	{
		ID:           "46",
		Title:        "فيلا في حي قباء",
		Description:  "فيلا فاخرة قريبة من مسجد قباء، 5 غرف نوم و4 دورات مياه مع حديقة.",
		Price:        3500000,
		City:         "المدينة المنورة",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         430,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "47",
		Title:        "فيلا في حي العالية",
		Description:  "فيلا راقية في موقع ممتاز، 6 غرف نوم و5 دورات مياه. قريبة من المسجد النبوي.",
		Price:        4200000,
		City:         "المدينة المنورة",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         500,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	// المدينة المنورة - شقق للإيجار
	{
		ID:           "48",
		Title:        "شقة للإيجار في حي قباء",
		Description:  "شقة مريحة قريبة من مسجد قباء، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        42000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         110,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "49",
		Title:        "شقة للإيجار في حي العالية",
		Description:  "شقة أنيقة قريبة من المسجد النبوي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        58000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         140,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// مكة المكرمة - شقق للبيع
	{
		ID:           "50",
		Title:        "شقة في حي العزيزية",
		Description:  "شقة فاخرة قريبة من الحرم المكي، 3 غرف نوم وصالتين مع دورة مياه. موقع مميز.",
		Price:        1600000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         155,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "51",
		Title:        "شقة في حي الزاهر",
		Description:  "شقة راقية في موقع استراتيجي، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        1250000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         130,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "52",
		Title:        "شقة في حي الشوقية",
		Description:  "شقة حديثة ومريحة، 4 غرف نوم و3 دورات مياه. قريبة من الحرم المكي.",
		Price:        2000000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         190,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	// مكة المكرمة - فيلات للبيع
	{
		ID:           "53",
		Title:        "فيلا في حي العزيزية",
		Description:  "فيلا فاخرة قريبة من الحرم المكي، 5 غرف نوم و4 دورات مياه مع حديقة.",
		Price:        3800000,
		City:         "مكة المكرمة",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         450,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "54",
		Title:        "فيلا في حي الزاهر",
		Description:  "فيلا راقية في موقع ممتاز، 6 غرف نوم و5 دورات مياه.",
		Price:        4500000,
		City:         "مكة المكرمة",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         530,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	// مكة المكرمة - شقق للإيجار
	{
		ID:           "55",
		Title:        "شقة للإيجار في حي العزيزية",
		Description:  "شقة مريحة قريبة من الحرم المكي، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        48000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         115,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "56",
		Title:        "شقة للإيجار في حي الزاهر",
		Description:  "شقة أنيقة في موقع استراتيجي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        65000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         150,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// الخبر - شقق للبيع
	{
		ID:           "57",
		Title:        "شقة في حي الكورنيش",
		Description:  "شقة فاخرة قريبة من البحر، 3 غرف نوم وصالتين مع دورة مياه. موقع ممتاز.",
		Price:        1500000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         145,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "58",
		Title:        "شقة في حي الراكة",
		Description:  "شقة راقية بتصميم عصري، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        1200000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         125,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "59",
		Title:        "شقة في حي الدوحة",
		Description:  "شقة حديثة ومريحة، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات الكبيرة.",
		Price:        1800000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         175,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الخبر - فيلات للبيع
	{
		ID:           "60",
		Title:        "فيلا في حي الكورنيش",
		Description:  "فيلا فاخرة قريبة من البحر، 5 غرف نوم و4 دورات مياه مع بركة سباحة.",
		Price:        4000000,
		City:         "الخبر",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         460,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "61",
		Title:        "فيلا في حي الراكة",
		Description:  "فيلا راقية في موقع ممتاز، 6 غرف نوم و5 دورات مياه مع حديقة.",
		Price:        4800000,
		City:         "الخبر",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         540,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الخبر - شقق للإيجار
	{
		ID:           "62",
		Title:        "شقة للإيجار في حي الكورنيش",
		Description:  "شقة مريحة قريبة من البحر، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        45000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         105,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "63",
		Title:        "شقة للإيجار في حي الراكة",
		Description:  "شقة أنيقة في موقع حيوي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        60000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         140,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// الطائف - شقق للبيع
	{
		ID:           "64",
		Title:        "شقة في حي الشهداء",
		Description:  "شقة فاخرة في الطائف، 3 غرف نوم وصالتين مع دورة مياه. موقع ممتاز.",
		Price:        1350000,
		City:         "الطائف",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         140,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "65",
		Title:        "شقة في حي العزيزية",
		Description:  "شقة راقية بتصميم حديث، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        1100000,
		City:         "الطائف",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         120,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "66",
		Title:        "شقة في حي الحوية",
		Description:  "شقة حديثة ومريحة، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات.",
		Price:        1750000,
		City:         "الطائف",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         170,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الطائف - فيلات للبيع
	{
		ID:           "67",
		Title:        "فيلا في حي الشهداء",
		Description:  "فيلا فاخرة مع حديقة واسعة، 5 غرف نوم و4 دورات مياه.",
		Price:        3200000,
		City:         "الطائف",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         420,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "68",
		Title:        "فيلا في حي العزيزية",
		Description:  "فيلا راقية في موقع ممتاز، 6 غرف نوم و5 دورات مياه مع بركة سباحة.",
		Price:        4000000,
		City:         "الطائف",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         500,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	// الطائف - شقق للإيجار
	{
		ID:           "69",
		Title:        "شقة للإيجار في حي الشهداء",
		Description:  "شقة مريحة ومناسبة، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        40000,
		City:         "الطائف",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         100,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "70",
		Title:        "شقة للإيجار في حي العزيزية",
		Description:  "شقة أنيقة في موقع حيوي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        55000,
		City:         "الطائف",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         135,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// أبها - شقق للبيع
	{
		ID:           "71",
		Title:        "شقة في حي المفتاحة",
		Description:  "شقة فاخرة في أبها، 3 غرف نوم وصالتين مع دورة مياه. موقع ممتاز.",
		Price:        1300000,
		City:         "أبها",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         145,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "72",
		Title:        "شقة في حي النصب",
		Description:  "شقة راقية بتصميم عصري، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        1050000,
		City:         "أبها",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         115,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "73",
		Title:        "شقة في حي السودة",
		Description:  "شقة حديثة ومريحة، 4 غرف نوم و3 دورات مياه. مناسبة للعائلات.",
		Price:        1700000,
		City:         "أبها",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         175,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeSale,
	},
	// أبها - فيلات للبيع
	{
		ID:           "74",
		Title:        "فيلا في حي المفتاحة",
		Description:  "فيلا فاخرة مع حديقة واسعة، 5 غرف نوم و4 دورات مياه.",
		Price:        3000000,
		City:         "أبها",
		PropertyType: "فيلا",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         410,
		Image:        "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "75",
		Title:        "فيلا في حي النصب",
		Description:  "فيلا راقية في موقع ممتاز، 6 غرف نوم و5 دورات مياه مع بركة سباحة.",
		Price:        3800000,
		City:         "أبها",
		PropertyType: "فيلا",
		Bedrooms:     6,
		Bathrooms:    intPtr(5),
		Area:         490,
		Image:        "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800",
		Purpose:      domain.PurposeSale,
	},
	// أبها - شقق للإيجار
	{
		ID:           "76",
		Title:        "شقة للإيجار في حي المفتاحة",
		Description:  "شقة مريحة ومناسبة، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        38000,
		City:         "أبها",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         98,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "77",
		Title:        "شقة للإيجار في حي النصب",
		Description:  "شقة أنيقة في موقع حيوي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        52000,
		City:         "أبها",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         130,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المزيد من الرياض
	{
		ID:           "78",
		Title:        "شقة في حي العريجاء",
		Description:  "شقة حديثة ومريحة، 2 غرفة نوم وصالة مع دورة مياه. قريبة من المدارس.",
		Price:        980000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         108,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "79",
		Title:        "شقة في حي المطار",
		Description:  "شقة أنيقة في موقع استراتيجي، 4 غرف نوم و3 دورات مياه. قريبة من المطار.",
		Price:        1950000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         185,
		Image:        "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "80",
		Title:        "تاون هاوس في حي العليا",
		Description:  "تاون هاوس راقي مع سطح خاص، 3 غرف نوم و2 دورات مياه. موقع ممتاز.",
		Price:        1900000,
		City:         "الرياض",
		PropertyType: "تاون هاوس",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         250,
		Image:        "https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "81",
		Title:        "تاون هاوس في حي المطار",
		Description:  "تاون هاوس عصري بتصميم حديث، 5 غرف نوم و4 دورات مياه. مناسب للعائلات الكبيرة.",
		Price:        2700000,
		City:         "الرياض",
		PropertyType: "تاون هاوس",
		Bedrooms:     5,
		Bathrooms:    intPtr(4),
		Area:         340,
		Image:        "https://images.unsplash.com/photo-1600607687644-c7171b42498b?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "82",
		Title:        "شقة للإيجار في حي المطار",
		Description:  "شقة مريحة ومناسبة، 1 غرفة نوم وصالة مع دورة مياه. مناسبة للعزاب.",
		Price:        32000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     1,
		Bathrooms:    intPtr(1),
		Area:         70,
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "83",
		Title:        "شقة للإيجار في حي العريجاء",
		Description:  "شقة أنيقة في موقع حيوي، 4 غرف نوم و3 دورات مياه. قريبة من المدارس.",
		Price:        80000,
		City:         "الرياض",
		PropertyType: "شقة",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         165,
		Image:        "https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المزيد من جدة
	{
		ID:           "84",
		Title:        "شقة في حي البلد",
		Description:  "شقة فاخرة في قلب جدة التاريخية، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        1700000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         155,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "85",
		Title:        "شقة في حي الكورنيش",
		Description:  "شقة راقية قريبة من البحر، 2 غرفة نوم وصالة مع دورة مياه. موقع ممتاز.",
		Price:        1950000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         135,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "86",
		Title:        "تاون هاوس في حي الزهراء",
		Description:  "تاون هاوس عصري مع سطح خاص، 4 غرف نوم و3 دورات مياه. قريب من البحر.",
		Price:        2400000,
		City:         "جدة",
		PropertyType: "تاون هاوس",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         300,
		Image:        "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "87",
		Title:        "شقة للإيجار في حي البلد",
		Description:  "شقة مريحة في قلب جدة، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        48000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         102,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "88",
		Title:        "شقة للإيجار في حي الكورنيش",
		Description:  "شقة أنيقة قريبة من البحر، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        75000,
		City:         "جدة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         155,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المزيد من الدمام
	{
		ID:           "89",
		Title:        "شقة في حي النزهة",
		Description:  "شقة حديثة ومريحة، 3 غرف نوم وصالتين مع دورة مياه. قريبة من الخدمات.",
		Price:        1280000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         138,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "90",
		Title:        "تاون هاوس في حي الفيصلية",
		Description:  "تاون هاوس راقي مع حديقة صغيرة، 3 غرف نوم و2 دورات مياه.",
		Price:        2000000,
		City:         "الدمام",
		PropertyType: "تاون هاوس",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         260,
		Image:        "https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "91",
		Title:        "شقة للإيجار في حي النزهة",
		Description:  "شقة مريحة ومناسبة، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        42000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         98,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	{
		ID:           "92",
		Title:        "شقة للإيجار في حي العدامة",
		Description:  "شقة أنيقة في موقع حيوي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        58000,
		City:         "الدمام",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         142,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المزيد من المدينة المنورة
	{
		ID:           "93",
		Title:        "شقة في حي العوالي",
		Description:  "شقة فاخرة قريبة من المسجد النبوي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        1450000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         148,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "94",
		Title:        "تاون هاوس في حي قباء",
		Description:  "تاون هاوس عصري قريب من مسجد قباء، 4 غرف نوم و3 دورات مياه.",
		Price:        2300000,
		City:         "المدينة المنورة",
		PropertyType: "تاون هاوس",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         290,
		Image:        "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "95",
		Title:        "شقة للإيجار في حي العوالي",
		Description:  "شقة مريحة قريبة من المسجد النبوي، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        40000,
		City:         "المدينة المنورة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         112,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المزيد من مكة المكرمة
	{
		ID:           "96",
		Title:        "شقة في حي الشوقية",
		Description:  "شقة راقية قريبة من الحرم المكي، 2 غرفة نوم وصالة مع دورة مياه.",
		Price:        1320000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         128,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "97",
		Title:        "شقة للإيجار في حي الشوقية",
		Description:  "شقة أنيقة قريبة من الحرم المكي، 3 غرف نوم وصالتين مع دورة مياه.",
		Price:        62000,
		City:         "مكة المكرمة",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         148,
		Image:        "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800",
		Purpose:      domain.PurposeRent,
	},
	// المزيد من الخبر
	{
		ID:           "98",
		Title:        "شقة في حي الدوحة",
		Description:  "شقة حديثة ومريحة، 3 غرف نوم وصالتين مع دورة مياه. قريبة من الخدمات.",
		Price:        1420000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     3,
		Bathrooms:    intPtr(2),
		Area:         143,
		Image:        "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "99",
		Title:        "تاون هاوس في حي الكورنيش",
		Description:  "تاون هاوس راقي قريب من البحر، 4 غرف نوم و3 دورات مياه مع سطح خاص.",
		Price:        2500000,
		City:         "الخبر",
		PropertyType: "تاون هاوس",
		Bedrooms:     4,
		Bathrooms:    intPtr(3),
		Area:         310,
		Image:        "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
		Purpose:      domain.PurposeSale,
	},
	{
		ID:           "100",
		Title:        "شقة للإيجار في حي الدوحة",
		Description:  "شقة مريحة ومناسبة، 2 غرفة نوم وصالة مع دورة مياه. قريبة من المدارس.",
		Price:        43000,
		City:         "الخبر",
		PropertyType: "شقة",
		Bedrooms:     2,
		Bathrooms:    intPtr(1),
		Area:         103,
		Image:        "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
		Purpose:      domain.PurposeRent,
	},
}

func intPtr(v int) *int { return &v }
