package user

// emailDomains are the providers a generated address can use.
var emailDomains = []string{"gmail.cl", "hotmail.com", "outlook.cl"}

// phonePrefix is the Chilean country code plus the mobile prefix.
const phonePrefix = "+569"

var firstNames = []string{
	"Agustín", "Alejandro", "Alonso", "Álvaro", "Andrés", "Antonio", "Bastián", "Benjamín",
	"Carlos", "Cristóbal", "Cristian", "Diego", "Eduardo", "Emilio", "Felipe", "Fernando",
	"Francisco", "Gabriel", "Gonzalo", "Hernán", "Ignacio", "Javier", "Joaquín", "Jorge",
	"José", "Juan", "Lucas", "Luis", "Manuel", "Martín", "Matías", "Maximiliano",
	"Nicolás", "Pablo", "Patricio", "Pedro", "Rodrigo", "Sebastián", "Tomás", "Vicente",
	"Alejandra", "Amanda", "Antonia", "Valentina", "Begoña", "Camila", "Carolina", "Catalina",
	"Claudia", "Constanza", "Daniela", "Elena", "Emilia", "Fernanda", "Florencia", "Francisca",
	"Gabriela", "Isidora", "Javiera", "Josefa", "Josefina", "Laura", "Macarena", "Magdalena",
	"María", "Martina", "Mónica", "Natalia", "Paula", "Paulina", "Renata", "Sofía",
	"Trinidad", "Verónica", "Ximena", "Ignacia", "Agustina", "Belén", "Rocío", "Inés",
}

var lastNames = []string{
	"González", "Muñoz", "Rojas", "Díaz", "Pérez", "Soto", "Contreras", "Silva",
	"Martínez", "Sepúlveda", "Morales", "Rodríguez", "López", "Fuentes", "Hernández", "Torres",
	"Araya", "Flores", "Espinoza", "Valenzuela", "Castillo", "Ramírez", "Reyes", "Gutiérrez",
	"Castro", "Vargas", "Álvarez", "Vásquez", "Tapia", "Fernández", "Sánchez", "Carrasco",
	"Gómez", "Cortés", "Herrera", "Núñez", "Jara", "Vergara", "Rivera", "Figueroa",
	"Riquelme", "García", "Miranda", "Bravo", "Vera", "Molina", "Vega", "Campos",
	"Sandoval", "Orellana", "Zúñiga", "Olivares", "Alarcón", "Gallardo", "Ortiz", "Garrido",
	"Salazar", "Guzmán", "Henríquez", "Saavedra", "Navarro", "Aguilera", "Parra", "Romero",
	"Aravena", "Vidal", "Pizarro", "Cáceres", "Poblete", "Peña", "Ríos", "Cárdenas",
	"Jiménez", "Ibáñez", "Cuevas", "Donoso", "Ulloa", "Yáñez", "Quiroz", "Acuña",
}
