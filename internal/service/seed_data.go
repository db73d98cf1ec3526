package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/thedrumepic/med/models"
)

// The fixed launch catalog of the Ferma Medovik storefront. Category ids
// are stable literals so the storefront can link to them; product ids
// are generated at seed time.

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat-honey", Name: "Мёд", Slug: "honey", Order: 0},
		{ID: "cat-bee", Name: "Пчелопродукты", Slug: "bee-products", Order: 1},
		{ID: "cat-tincture", Name: "Настойки", Slug: "tinctures", Order: 2},
		{ID: "cat-cream", Name: "Крема", Slug: "creams", Order: 3},
		{ID: "cat-candle", Name: "Свечи", Slug: "candles", Order: 4},
		{ID: "cat-accessory", Name: "Аксессуары", Slug: "accessories", Order: 5},
	}
}

func seedProducts() []models.Product {
	honeyWeights := []models.WeightPrice{
		{Weight: "250гр", Price: 1201},
		{Weight: "340гр", Price: 1500},
		{Weight: "550гр", Price: 2200},
		{Weight: "750гр", Price: 2800},
		{Weight: "1кг", Price: 3500},
		{Weight: "1.5кг", Price: 5000},
	}

	now := time.Now().UTC().Format(time.RFC3339)

	product := func(name, description, categoryID, image string, basePrice float64, weightPrices []models.WeightPrice) models.Product {
		if weightPrices == nil {
			weightPrices = []models.WeightPrice{}
		}
		return models.Product{
			ID:           uuid.NewString(),
			Name:         name,
			Description:  description,
			CategoryID:   categoryID,
			Image:        image,
			BasePrice:    basePrice,
			WeightPrices: weightPrices,
			CreatedAt:    now,
		}
	}

	return []models.Product{
		// Мёд
		product("Мёд Разнотравье",
			"Наш мёд \"Разнотравье\" собран в экологически чистых районах с десятков видов луговых цветов. Он обладает неповторимым многогранным ароматом и мягким, обволакивающим вкусом. Этот сорт считается универсальным помощником для укрепления иммунитета и общего тонуса организма.",
			"cat-honey", "https://images.unsplash.com/photo-1761416351532-ede97c29fab8?w=800", 1201, honeyWeights),
		product("Мёд Подсолнух",
			"Мёд из подсолнечника - один из самых популярных сортов. Отличается ярко-жёлтым цветом и приятным ароматом. Быстро кристаллизуется, образуя мелкозернистую структуру.",
			"cat-honey", "https://images.pexels.com/photos/7990484/pexels-photo-7990484.jpeg?w=800", 1200, honeyWeights),
		product("Мёд Царский Бархат",
			"Элитный сорт мёда с нежнейшей кремовой текстурой. Обладает изысканным вкусом с легкими нотками ванили и карамели.",
			"cat-honey", "https://images.unsplash.com/photo-1722718465036-64e3eacef09b?w=800", 1800, honeyWeights),
		product("Мёд Цветочный",
			"Классический цветочный мёд, собранный с разнообразных медоносов. Обладает гармоничным вкусом и богатым ароматом летних цветов.",
			"cat-honey", "https://images.pexels.com/photos/8500508/pexels-photo-8500508.jpeg?w=800", 1200, honeyWeights),
		product("Мёд Гречишный",
			"Тёмный мёд с насыщенным вкусом и характерным терпким послевкусием. Богат железом и антиоксидантами.",
			"cat-honey", "https://images.unsplash.com/photo-1759442727303-4c08421317d6?w=800", 1200, honeyWeights),

		// Пчелопродукты
		product("Пыльца цветочная",
			"Натуральная цветочная пыльца - кладезь витаминов и микроэлементов. Укрепляет иммунитет и повышает работоспособность.",
			"cat-bee", "https://images.pexels.com/photos/7176847/pexels-photo-7176847.jpeg?w=800", 1500,
			[]models.WeightPrice{{Weight: "100гр", Price: 1500}, {Weight: "250гр", Price: 3000}}),
		product("Перга пчелиная",
			"\"Пчелиный хлеб\" - ферментированная пыльца с уникальным составом. Природный биостимулятор.",
			"cat-bee", "https://images.pexels.com/photos/971355/pexels-photo-971355.jpeg?w=800", 2500,
			[]models.WeightPrice{{Weight: "100гр", Price: 2500}, {Weight: "250гр", Price: 5500}}),
		product("Прополис натуральный",
			"Природный антибиотик с мощными антисептическими свойствами. Используется для укрепления иммунитета.",
			"cat-bee", "https://images.unsplash.com/photo-1570723968319-d8db6a35dbeb?w=800", 1200, nil),
		product("Маточное молочко",
			"Королевское желе - самый ценный продукт пчеловодства. Мощный иммуномодулятор и адаптоген.",
			"cat-bee", "https://images.unsplash.com/photo-1620032599268-c822dd1c3076?w=800", 8500, nil),

		// Настойки
		product("Настойка прополиса",
			"Спиртовая настойка прополиса для укрепления иммунитета и профилактики простудных заболеваний.",
			"cat-tincture", "https://images.unsplash.com/photo-1623870605527-fe47e6b24193?w=800", 2500,
			[]models.WeightPrice{{Weight: "200мл", Price: 2500}}),
		product("Настойка подмора",
			"Настойка пчелиного подмора - традиционное средство народной медицины.",
			"cat-tincture", "https://images.pexels.com/photos/8450512/pexels-photo-8450512.jpeg?w=800", 2800,
			[]models.WeightPrice{{Weight: "200мл", Price: 2800}}),
		product("Яблочный уксус",
			"Натуральный яблочный уксус с мёдом. Полезен для пищеварения и обмена веществ.",
			"cat-tincture", "https://images.unsplash.com/photo-1564473530128-2a52ee4d6ea8?w=800", 1800,
			[]models.WeightPrice{{Weight: "200мл", Price: 1800}}),
		product("Настойка 3 в 1",
			"Комплексная настойка на основе прополиса, подмора и восковой моли.",
			"cat-tincture", "https://images.pexels.com/photos/12895079/pexels-photo-12895079.jpeg?w=800", 4500,
			[]models.WeightPrice{{Weight: "200мл", Price: 4500}}),
		product("Огнёвка",
			"Настойка восковой моли - уникальный продукт для поддержки дыхательной системы.",
			"cat-tincture", "https://images.unsplash.com/photo-1687472238829-59855ebda1f8?w=800", 3500,
			[]models.WeightPrice{{Weight: "200мл", Price: 3500}}),

		// Крема
		product("Нежные пяточки",
			"Крем для ног на основе пчелиного воска. Смягчает и увлажняет кожу стоп.",
			"cat-cream", "https://images.unsplash.com/photo-1763503836825-97f5450d155a?w=800", 2200, nil),
		product("Чудомазь",
			"Универсальная мазь с прополисом для заживления и ухода за кожей.",
			"cat-cream", "https://images.pexels.com/photos/6645252/pexels-photo-6645252.jpeg?w=800", 3500, nil),
		product("Прополисная мазь",
			"Лечебная мазь на основе прополиса с антисептическим действием.",
			"cat-cream", "https://images.pexels.com/photos/6815653/pexels-photo-6815653.jpeg?w=800", 2800, nil),

		// Свечи
		product("Свечи восковые",
			"Натуральные свечи из пчелиного воска. Горят ровно и долго, очищают воздух.",
			"cat-candle", "https://images.unsplash.com/photo-1575833949203-ade5a03eb82c?w=800", 1500, nil),
		product("Свечи ароматические",
			"Восковые свечи с добавлением натуральных эфирных масел.",
			"cat-candle", "https://images.pexels.com/photos/18921271/pexels-photo-18921271.jpeg?w=800", 2000, nil),

		// Аксессуары
		product("Деревянная ложка для мёда",
			"Традиционная деревянная ложка для мёда ручной работы.",
			"cat-accessory", "https://images.unsplash.com/photo-1762926627703-63d2dc088d04?w=800", 500, nil),
		product("Подарочный набор",
			"Красивая подарочная упаковка для мёда и пчелопродуктов.",
			"cat-accessory", "https://images.unsplash.com/photo-1722718465036-64e3eacef09b?w=800", 1000, nil),
	}
}
