package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Nomes das coleções no Mongo; bancos existentes já usam estes.
const (
	CollEmpresas     = "empresas"
	CollClientes     = "clientes"
	CollFuncoes      = "funcoes"
	CollFuncionarios = "funcionarios"
	CollPresencas    = "registros_presenca"
	CollAtestados    = "atestados"
	CollLicencas     = "licencas"
)

type MongoCollection[T any] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any](db *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{coll: db.Collection(name)}
}

func (r *MongoCollection[T]) Create(ctx context.Context, doc *T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *MongoCollection[T]) GetAll(ctx context.Context, limit int64) ([]T, error) {
	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []T{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc)
	}
	return list, cur.Err()
}

func (r *MongoCollection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *MongoCollection[T]) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoCollection[T]) countWhere(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

// ensureIndex cria o índice; se já existir com outras opções, dropa e recria.
func (r *MongoCollection[T]) ensureIndex(ctx context.Context, model mongo.IndexModel, name string) error {
	model.Options = options.Index().SetName(name)
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, name); dropErr != nil {
			return fmt.Errorf("drop index %s: %w", name, dropErr)
		}
		_, err = r.coll.Indexes().CreateOne(ctx, model)
	}
	return err
}

type mongoStats struct {
	b         *Backend
	presencas *MongoCollection[models.RegistroPresenca]
	atestados *MongoCollection[models.Atestado]
}

func (s *mongoStats) Stats(ctx context.Context, today string) (models.DashboardStats, error) {
	var out models.DashboardStats
	var err error
	if err = s.b.totals(ctx, &out); err != nil {
		return out, err
	}
	if out.FuncionariosPresentesHoje, err = s.presencas.countWhere(ctx, bson.M{"data": today, "presente": true}); err != nil {
		return out, err
	}
	if out.FuncionariosAusentesHoje, err = s.presencas.countWhere(ctx, bson.M{"data": today, "presente": false}); err != nil {
		return out, err
	}
	out.AtestadosAtivos, err = s.atestados.countWhere(ctx, bson.M{"data_retorno_prevista": bson.M{"$gte": today}})
	return out, err
}

// MongoBackend devolve o backend e uma função que garante os índices.
func NewMongoBackend(db *mongo.Database) (*Backend, func(context.Context) error) {
	presencas := NewMongoCollection[models.RegistroPresenca](db, CollPresencas)
	atestados := NewMongoCollection[models.Atestado](db, CollAtestados)
	licencas := NewMongoCollection[models.Licenca](db, CollLicencas)

	b := &Backend{
		Empresas:     NewMongoCollection[models.Empresa](db, CollEmpresas),
		Clientes:     NewMongoCollection[models.Cliente](db, CollClientes),
		Funcoes:      NewMongoCollection[models.Funcao](db, CollFuncoes),
		Funcionarios: NewMongoCollection[models.Funcionario](db, CollFuncionarios),
		Presencas:    presencas,
		Atestados:    atestados,
		Licencas:     licencas,
	}
	b.Stats = &mongoStats{b: b, presencas: presencas, atestados: atestados}

	ensure := func(ctx context.Context) error {
		byFuncionario := mongo.IndexModel{Keys: bson.D{{Key: "funcionario_id", Value: 1}}}
		if err := presencas.ensureIndex(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "data", Value: 1}, {Key: "presente", Value: 1}},
		}, "data_presente"); err != nil {
			return err
		}
		if err := presencas.ensureIndex(ctx, byFuncionario, "funcionario"); err != nil {
			return err
		}
		if err := atestados.ensureIndex(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "data_retorno_prevista", Value: 1}},
		}, "retorno_previsto"); err != nil {
			return err
		}
		if err := atestados.ensureIndex(ctx, byFuncionario, "funcionario"); err != nil {
			return err
		}
		return licencas.ensureIndex(ctx, byFuncionario, "funcionario")
	}
	return b, ensure
}
