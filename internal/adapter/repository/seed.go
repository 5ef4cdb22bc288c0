package repository

import (
	"mirnito/internal/domain/entity"
)

// Seed data stands in for the database. Everything here resets on
// restart except the session snapshot file.

func SeedUsers() []*entity.User {
	return []*entity.User{
		{ID: "u1", Name: "Алексей (Админ)", Email: "admin@mirnito.ru", Role: entity.RoleAdmin, IsVerified: true, Phone: "+7 999 000-00-00", Avatar: "https://i.pravatar.cc/150?u=admin"},
		{ID: "u2", Name: "Анна", Email: "anna@mail.ru", Role: entity.RoleUser, IsVerified: true, Phone: "+7 999 111-22-33", Avatar: "https://i.pravatar.cc/150?u=10"},
		{ID: "u3", Name: "Игорь", Email: "igor@mail.ru", Role: entity.RoleUser, IsVerified: false, Phone: "+7 999 444-55-66", Avatar: "https://i.pravatar.cc/150?u=11"},
	}
}

func SeedListings() []*entity.Listing {
	return []*entity.Listing{
		{
			ID: "a1", Title: "Детская коляска Yoya", Price: 8500, Currency: "₽",
			Description: "Легкая прогулочная коляска, состояние отличное. Пользовались один сезон.",
			Location: "Корпус 3", Category: "Детское",
			Image: "https://picsum.photos/seed/stroller/600/400", Date: "Сегодня",
			Author: "Анна", AuthorID: "u2", Status: entity.ListingStatusActive,
			IsVip: true,
		},
		{
			ID: "a2", Title: "Остатки ламината", Price: 1200, Currency: "₽",
			Description: "После ремонта осталось 2 упаковки ламината, 33 класс, дуб.",
			Location: "Корпус 7", Category: "Ремонт и стройка",
			Image: "https://picsum.photos/seed/laminate/600/400", Date: "Вчера",
			Author: "Игорь", AuthorID: "u3", Status: entity.ListingStatusActive,
		},
		{
			ID: "a3", Title: "Велосипед Stels подростковый", Price: 6000, Currency: "₽",
			Description: "Колеса 24\", требуется подкачка. Отдам с замком.",
			Location: "Корпус 1", Category: "Спорт и отдых",
			Image: "https://picsum.photos/seed/bike/600/400", Date: "2 дня назад",
			Author: "Анна", AuthorID: "u2", Status: entity.ListingStatusPending,
			IsUrgent: true,
		},
		{
			ID: "a4", Title: "Диван-книжка", Price: 4500, Currency: "₽",
			Description: "Самовывоз из подъезда 2, лифт грузовой есть.",
			Location: "Корпус 5", Category: "Мебель",
			Image: "https://picsum.photos/seed/sofa/600/400", Date: "Неделю назад",
			Author: "Игорь", AuthorID: "u3", Status: entity.ListingStatusArchived,
			IsPromoted: true,
		},
	}
}

func SeedChats() []*entity.Chat {
	return []*entity.Chat{
		{ID: "c1", UserName: "Анна", UserAvatar: "https://i.pravatar.cc/150?u=10", LastMessage: "Коляска еще продается?", UnreadCount: 0, ListingTitle: "Детская коляска Yoya", Time: "10:30"},
		{ID: "c2", UserName: "Игорь", UserAvatar: "https://i.pravatar.cc/150?u=11", LastMessage: "Да, лифт работает.", UnreadCount: 2, ListingTitle: "Остатки ламината", Time: "Вчера"},
	}
}

func SeedMessages() map[string][]*entity.Message {
	return map[string][]*entity.Message{
		"c1": {
			{ID: "m1", Text: "Здравствуйте! Коляска еще в наличии?", Sender: entity.SenderSelf, Time: "10:00", Read: true},
			{ID: "m2", Text: "Добрый день! Да, еще не продала.", Sender: entity.SenderCounterpart, Time: "10:05", Read: true},
		},
		"c2": {
			{ID: "m3", Text: "Лифт работает?", Sender: entity.SenderSelf, Time: "12:00", Read: true},
			{ID: "m4", Text: "Да, лифт работает.", Sender: entity.SenderCounterpart, Time: "12:05", Read: false},
		},
	}
}

func SeedNotifications() []*entity.Notification {
	return []*entity.Notification{
		{ID: "n1", Title: "Добро пожаловать!", Text: "Спасибо за регистрацию на Mirnito.Ru", Time: "1 ч. назад", Read: false, Type: entity.NotificationSystem},
		{ID: "n2", Title: "Снижение цены", Text: "Цена на \"Детская коляска\" снизилась на 500₽", Time: "2 ч. назад", Read: false, Type: entity.NotificationPrice},
		{ID: "n3", Title: "Модерация", Text: "Ваше объявление \"Велосипед\" опубликовано", Time: "Вчера", Read: true, Type: entity.NotificationSuccess},
	}
}
