package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailRegistrado = errors.New("el correo ya está registrado")

// RegisterUser crea una cuenta nueva con el password hasheado
func RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, ErrEmailRegistrado
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Nombre:    req.Nombre,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// AuthenticateUser verifica credenciales y devuelve el usuario
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid email or password")
	}

	return &dbUser, nil
}

// GetUserByID busca un usuario por su id (para /auth/me)
func GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}
