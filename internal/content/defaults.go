// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

// Compiled-in fallback documents. The public site renders these when no
// override exists in the database; the dev seed writes them as the initial
// override so the admin editor opens with real copy.

// DefaultHomeContent returns the fallback home-page document.
func DefaultHomeContent() *HomeContent {
	return &HomeContent{
		AnimatedOverlay: AnimatedOverlay{
			Enabled: true,
			Phrases: []string{"Искусство", "Интерьер", "Настроение"},
		},
		Hero: HomeHero{
			Tagline: "Искусство, которое живёт в вашем доме",
			Description: HomeDescription{
				Lead: "Галерея авторских работ для интерьера",
				Text: "Картины, фотографии и текстиль от современных художников. Каждая работа подбирается под ваш интерьер и ваше настроение.",
				Adjectives: []string{
					"смелое", "тёплое", "созерцательное", "дерзкое", "нежное",
				},
			},
		},
		Contact: HomeContact{
			Title:   "Свяжитесь с нами",
			Phone:   "+7 (495) 120-45-67",
			Email:   "hello@arthaus.ru",
			Address: "Москва, Трёхпрудный переулок, 9",
		},
	}
}

// DefaultAboutContent returns the fallback about-page document.
func DefaultAboutContent() *AboutContent {
	return &AboutContent{
		Hero: AboutHero{
			Subtitle:    "О галерее",
			Title:       "Мы соединяем художников и дома",
			Description: "Arthaus — онлайн-галерея современного искусства для интерьера. Мы работаем напрямую с авторами и помогаем найти работу, которая станет частью вашего пространства.",
		},
		Categories: []CategoryCard{
			{
				Title:       "Живопись",
				Image:       "/images/about/painting.jpg",
				Description: "Авторские полотна маслом и акрилом — от камерных этюдов до крупных форм.",
				Href:        "/catalog/painting",
			},
			{
				Title:       "Фотография",
				Image:       "/images/about/photo.jpg",
				Description: "Лимитированные тиражи художественной фотографии с авторской печатью.",
				Href:        "/catalog/photo",
			},
			{
				Title:       "Текстиль",
				Image:       "/images/about/textile.jpg",
				Description: "Гобелены, панно и авторские ткани ручной работы.",
				Href:        "/catalog/textile",
			},
			{
				Title:       "Мебель для питомцев",
				Image:       "/images/about/pet-furniture.jpg",
				Description: "Домики и лежанки, которые не прячут, а показывают гостям.",
				Href:        "/catalog/pet-furniture",
			},
			{
				Title:       "Коллекции",
				Image:       "/images/about/collections.jpg",
				Description: "Кураторские подборки работ, собранные вокруг одной идеи.",
				Href:        "/catalog/collections",
			},
		},
		Alphabet: []AlphabetItem{
			{
				Letter:      "А",
				Title:       "Авторство",
				Image:       "/images/alphabet/a.jpg",
				Description: "Каждая работа подписана автором и сопровождается сертификатом подлинности.",
			},
			{
				Letter:      "Г",
				Title:       "Галерея",
				Image:       "/images/alphabet/g.jpg",
				Caption:     "Наш шоурум в Москве",
				Description: "Работы можно увидеть вживую — по записи, за чашкой кофе.",
			},
			{
				Letter:      "И",
				Title:       "Интерьер",
				Image:       "/images/alphabet/i.jpg",
				Description: "Подбираем искусство под конкретное пространство: свет, цвет, масштаб.",
			},
		},
		Outro: AboutOutro{
			Title:       "Искусство ближе, чем кажется",
			Description: "Напишите нам — подберём работы под ваш интерьер, бюджет и настроение.",
		},
	}
}

// DefaultFAQContent returns the fallback FAQ document.
func DefaultFAQContent() *FAQContent {
	return &FAQContent{
		Hero: FAQHero{
			Title:    "Вопросы и ответы",
			Subtitle: "Всё о заказе, доставке и возврате",
		},
		Categories: []string{"Общее", "Доставка", "Оплата", "Возврат"},
		Items: []FAQItem{
			{
				Category: "Общее",
				Question: "Все ли работы существуют в единственном экземпляре?",
				Answer:   "Живопись и текстиль — да. Фотографии печатаются лимитированными тиражами, номер отпечатка указан на карточке работы.",
			},
			{
				Category: "Доставка",
				Question: "Как вы упаковываете картины?",
				Answer:   "Музейная упаковка: стекло оклеивается, углы защищаются, работа едет в жёстком коробе. Крупные форматы доставляет арт-логист.",
			},
			{
				Category: "Оплата",
				Question: "Можно ли оплатить работу частями?",
				Answer:   "Да, для работ дороже 100 000 ₽ доступна рассрочка на 4 платежа без переплаты.",
			},
			{
				Category: "Возврат",
				Question: "Что если работа не подошла к интерьеру?",
				Answer:   "В течение 14 дней работу можно вернуть или обменять — мы заберём её за свой счёт.",
			},
		},
		CTA: FAQCTA{
			Title:       "Не нашли ответ?",
			Description: "Напишите нам — отвечаем в течение рабочего дня.",
			ButtonLabel: "Задать вопрос",
			ButtonHref:  "/contacts",
		},
	}
}

// DefaultCatalogPageContent returns the fallback catalog document.
func DefaultCatalogPageContent() *CatalogPageContent {
	return &CatalogPageContent{
		Hero: CatalogHero{
			Title:       "Каталог",
			Description: "Живопись, фотография, текстиль и предметы — всё, из чего складывается характер интерьера.",
		},
		Categories: []CatalogPageCategoryItem{
			{ID: "painting", Title: "Живопись", Image: "/images/catalog/painting.jpg", Href: "/catalog/painting"},
			{ID: "photo", Title: "Фотография", Image: "/images/catalog/photo.jpg", Href: "/catalog/photo"},
			{ID: "textile", Title: "Текстиль", Image: "/images/catalog/textile.jpg", Href: "/catalog/textile"},
			{ID: "pet-furniture", Title: "Мебель для питомцев", Image: "/images/catalog/pet.jpg", Href: "/catalog/pet-furniture"},
			{ID: "collections", Title: "Коллекции", Image: "/images/catalog/collections.jpg", Href: "/catalog/collections"},
		},
		CategoryPages: []CatalogCategoryPageItem{
			{
				ID:    "painting",
				Title: "Живопись",
				Subnav: []SubnavLink{
					{Label: "Масло", Href: "/catalog/painting?medium=oil"},
					{Label: "Акрил", Href: "/catalog/painting?medium=acrylic"},
					{Label: "Графика", Href: "/catalog/painting?medium=graphic"},
				},
			},
			{
				ID:    "photo",
				Title: "Фотография",
				Subnav: []SubnavLink{
					{Label: "Чёрно-белая", Href: "/catalog/photo?tone=bw"},
					{Label: "Цветная", Href: "/catalog/photo?tone=color"},
				},
			},
			{
				ID:     "textile",
				Title:  "Текстиль",
				Subnav: []SubnavLink{{Label: "Гобелены"}, {Label: "Панно"}},
			},
			{
				ID:     "pet-furniture",
				Title:  "Мебель для питомцев",
				Subnav: []SubnavLink{{Label: "Домики"}, {Label: "Лежанки"}},
			},
			{
				ID:     "collections",
				Title:  "Коллекции",
				Subnav: []SubnavLink{{Label: "Все коллекции", Href: "/catalog/collections"}},
			},
		},
		ProductPage: CatalogProductPage{
			OrderButtonLabel: "Запросить работу",
			PriceNote:        "Цена включает оформление и сертификат подлинности",
			DeliveryNote:     "Доставка по Москве — 1–2 дня, по России — от 3 дней",
			CustomNote:       "Возможно исполнение в другом размере — уточните у куратора",
		},
	}
}

// DefaultPaymentDeliveryContent returns the fallback payment & delivery
// document.
func DefaultPaymentDeliveryContent() *PaymentDeliveryContent {
	return &PaymentDeliveryContent{
		Hero: PaymentHero{
			Title:       "Оплата и доставка",
			Description: "Бережно довезём работу до вашей двери и повесим на стену.",
		},
		Features: []PaymentFeature{
			{
				Title:       "Курьером по Москве",
				Description: "Доставка в день заказа или в удобный интервал.",
				Bullets:     []string{"1–2 дня", "Примерка к стене", "Оплата после осмотра"},
			},
			{
				Title:       "По России",
				Description: "Надёжные арт-логисты и страховка каждой отправки.",
				Bullets:     []string{"От 3 дней", "Жёсткий короб", "Полное страхование"},
			},
		},
		Concierge: ConciergeSection{
			Title:       "Консьерж-доставка",
			Description: "Для крупных работ и коллекций — собственная бригада: привезём, повесим, заберём упаковку.",
			Highlights:  []string{"Монтаж на любой тип стены", "Выезд в день обращения", "Вывоз упаковки"},
		},
		Logistics: LogisticsSection{
			Title:       "Логистика",
			Description: "Работаем с проверенными перевозчиками произведений искусства.",
			Partners:    []string{"СДЭК", "Деловые Линии", "ArtLogistics"},
		},
		Payment: PaymentSection{
			Title:       "Оплата",
			Description: "Картой на сайте, по счёту для юридических лиц или в рассрочку.",
			Logos: []PaymentLogo{
				{Name: "Мир", Image: "/images/pay/mir.svg", Alt: "Платёжная система Мир"},
				{Name: "СБП", Image: "/images/pay/sbp.svg", Alt: "Система быстрых платежей"},
			},
			TrustBadges: []string{"Безопасная оплата", "Чек онлайн", "Возврат 14 дней"},
		},
	}
}
