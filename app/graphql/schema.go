// Package graphql exposes the catalog as a read-only GraphQL endpoint.
//
//	query {
//	  products(category: "Dresses") { id title price inStock }
//	  product(id: 1) { title }
//	  categories
//	}
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shalabia/storefront/app/catalog"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/pkg/response"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"category": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"image":    &graphql.Field{Type: graphql.String},
		"inStock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

func rootQuery() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if q, ok := p.Args["search"].(string); ok && q != "" {
						return catalog.Search(q), nil
					}
					if cat, ok := p.Args["category"].(string); ok && cat != "" {
						return catalog.ByCategory(cat), nil
					}
					return catalog.All(), nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					if product, ok := catalog.Find(id); ok {
						return product, nil
					}
					return (*models.Product)(nil), nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Categories(), nil
				},
			},
		},
	})
}

// NewSchema builds the catalog schema.
func NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery()})
}

// Handler serves GraphQL POST requests against the catalog schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result) //nolint:errcheck
	}
}
