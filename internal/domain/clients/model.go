package clients

import (
	"strings"
	"time"
)

// Animal es la categoría con la que se registra un cliente.
// Por cumplimiento (HIPAA) los clientes se guardan como animales y nunca con datos personales.
// @Enum puppy, turtle, cat
type Animal string

const (
	AnimalPuppy  Animal = "puppy"
	AnimalTurtle Animal = "turtle"
	AnimalCat    Animal = "cat"
)

// Choices devuelve los animales que ofrecen las UIs, en orden de presentación.
func Choices() []Animal {
	return []Animal{AnimalPuppy, AnimalTurtle, AnimalCat}
}

const fallbackEmoji = "🐾"

var emojiByAnimal = map[Animal]string{
	AnimalPuppy:  "🐕",
	AnimalTurtle: "🐢",
	AnimalCat:    "🐱",
}

// Emoji devuelve el ícono del animal (sin distinguir mayúsculas) o una huella por defecto.
func Emoji(a Animal) string {
	if e, ok := emojiByAnimal[Animal(strings.ToLower(string(a)))]; ok {
		return e
	}
	return fallbackEmoji
}

// Client es una fila de la tabla remota "clients".
// ID y CreatedAt los asigna el servicio remoto, nunca esta app.
type Client struct {
	ID        string
	Animal    Animal
	CreatedAt time.Time
}

// NewClient son los campos que el usuario aporta al crear un cliente.
type NewClient struct {
	Animal Animal
}
