package configs

import (
	"log"

	"github.com/hectorDev2/macao-comanda/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin account from env.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// Seed the menu catalog. FirstOrCreate keeps reruns idempotent.
func SeedMenu() error {
	db := DB()

	price := func(v string) decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return d
	}

	items := []entity.Menu{
		{Name: "Picaña", Category: "parrilla", Price: price("52.00"), Image: "/images/parrilla/picana.webp", Description: "Corte brasilero a la parrilla", Featured: true, RequiresKitchen: true, Active: true},
		{Name: "Churrasco", Category: "parrilla", Price: price("45.00"), Image: "/images/parrilla/churrasco-parrilla.jpg", Description: "Churrasco a la parrilla con guarnición", RequiresKitchen: true, Active: true},
		{Name: "Bife de chorizo", Category: "parrilla", Price: price("48.00"), Image: "/images/parrilla/bife-parrilla.webp", Description: "Bife jugoso a la parrilla", RequiresKitchen: true, Active: true},
		{Name: "Asado de tira", Category: "parrilla", Price: price("46.00"), Image: "/images/parrilla/asado-de-tira.jpg", Description: "Tira de asado a fuego lento", RequiresKitchen: true, Active: true},
		{Name: "Alitas BBQ", Category: "alitas", Price: price("28.00"), Image: "/images/alitas/alitas-bbq.jpg", Description: "Alitas bañadas en salsa BBQ", RequiresKitchen: true, Active: true},
		{Name: "Alitas búfalo", Category: "alitas", Price: price("28.00"), Image: "/images/alitas/alitas-bufalo.jpg", Description: "Alitas picantes estilo búfalo", RequiresKitchen: true, Active: true},
		{Name: "Pechuga grill", Category: "pollos", Price: price("32.00"), Image: "/images/pollos/pechuga-grill.avif", Description: "Pechuga a la plancha con ensalada", RequiresKitchen: true, Active: true},
		{Name: "Pechuga napolitana", Category: "pollos", Price: price("36.00"), Image: "/images/pollos/pechuga-napolitana.jpg", Description: "Pechuga gratinada con jamón y queso", RequiresKitchen: true, Active: true},
		{Name: "Tallarines Alfredo", Category: "pastas", Price: price("30.00"), Image: "/images/pastas/tallarines-alfredo.jpg", Description: "Pasta en salsa blanca", RequiresKitchen: true, Active: true},
		{Name: "Tallarín saltado", Category: "pastas", Price: price("32.00"), Image: "/images/pastas/tallarin-saltado.jpg", Description: "Tallarín salteado al wok", RequiresKitchen: true, Active: true},
		{Name: "Maíz morado (vaso)", Category: "refrescos", Price: price("6.00"), Image: "/images/refrescos/maiz-morado-vaso.jpg", Description: "Refresco de maíz morado", Active: true},
		{Name: "Maíz morado (jarra)", Category: "refrescos", Price: price("18.00"), Image: "/images/refrescos/maiz-morado-jarra.webp", Description: "Jarra para compartir", Active: true},
	}

	for _, m := range items {
		if err := db.Where("name = ?", m.Name).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	return nil
}
