// Package store provides persistence for issuer company profiles.
//
// Collections (database configured by MONGO_DATABASE):
//   - company_profiles – one document per issuer CNPJ (_id = CNPJ digits)
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nexconsult/nfse-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profilesCollection = "company_profiles"

// Client wraps a MongoDB client.
type Client struct {
	mc  *mongo.Client
	mdb *mongo.Database
}

// New connects to MongoDB and returns a store Client.
func New(ctx context.Context, uri, database string) (*Client, error) {
	clientOpts := options.Client().ApplyURI(uri)
	mc, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("store: mongo connect: %w", err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: mongo ping: %w", err)
	}

	c := &Client{mc: mc, mdb: mc.Database(database)}

	if err := c.ensureIndices(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Disconnect cleanly closes the MongoDB connection.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.mc.Disconnect(ctx)
}

// Ping checks the connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.mc.Ping(ctx, nil)
}

// ensureIndices creates lookup indices if missing.
func (c *Client) ensureIndices(ctx context.Context) error {
	pc := c.mdb.Collection(profilesCollection)
	if _, err := pc.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updated_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("store: profile indices: %w", err)
	}
	return nil
}

// GetProfile returns the profile stored for cnpj.
// Returns nil, nil when not found.
func (c *Client) GetProfile(ctx context.Context, cnpj string) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := c.mdb.Collection(profilesCollection).FindOne(ctx, bson.M{"_id": cnpj}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get profile: %w", err)
	}
	return &p, nil
}

// SaveProfile upserts the profile keyed by its CNPJ.
func (c *Client) SaveProfile(ctx context.Context, p *models.CompanyProfile) error {
	p.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": p.CNPJ}
	update := bson.M{"$set": bson.M{
		"razao_social":        p.RazaoSocial,
		"regime_tributario":   p.RegimeTributario,
		"inscricao_municipal": p.InscricaoMunicipal,
		"codigo_municipio":    p.CodigoMunicipio,
		"updated_at":          p.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := c.mdb.Collection(profilesCollection).UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("store: save profile: %w", err)
	}
	return nil
}

// DeleteProfile removes the profile for cnpj. It reports whether a
// document was deleted.
func (c *Client) DeleteProfile(ctx context.Context, cnpj string) (bool, error) {
	res, err := c.mdb.Collection(profilesCollection).DeleteOne(ctx, bson.M{"_id": cnpj})
	if err != nil {
		return false, fmt.Errorf("store: delete profile: %w", err)
	}
	return res.DeletedCount > 0, nil
}
