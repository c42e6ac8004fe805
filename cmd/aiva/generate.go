package main

import (
	"context"

	"github.com/spf13/cobra"

	"aiva/internal/domain"
	"aiva/internal/service"
)

func generateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate content or graphics with AI",
	}

	cmd.AddCommand(generateContentCmd(configPath))
	cmd.AddCommand(generateGraphicCmd(configPath))

	return cmd
}

func generateContentCmd(configPath *string) *cobra.Command {
	var (
		req         service.GenerateContentRequest
		contentType string
		temperature float32
	)

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Write content for an ICP and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = domain.ContentType(contentType)
			if cmd.Flags().Changed("temperature") {
				req.Temperature = &temperature
			}
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				item, err := service.NewContentGenerator(a.store, a.aiClient(), a.logger).GenerateContent(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(item)
			})
		},
	}

	cmd.Flags().StringVar(&req.ICPID, "icp", "", "ICP id")
	cmd.Flags().StringVar(&req.Topic, "topic", "", "Topic to write about")
	cmd.Flags().StringVar(&req.Title, "title", "", "Title (defaults to the topic)")
	cmd.Flags().StringVarP(&contentType, "type", "t", string(domain.ContentTypeSocial), "Content type (social, email, blog, landing, proposal)")
	cmd.Flags().StringVar(&req.Provider, "provider", "", "Provider override (openai, gemini)")
	cmd.Flags().StringVar(&req.Model, "model", "", "Model override")
	cmd.Flags().Float32Var(&temperature, "temperature", 0, "Sampling temperature")
	_ = cmd.MarkFlagRequired("icp")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func generateGraphicCmd(configPath *string) *cobra.Command {
	var req service.GenerateGraphicRequest

	cmd := &cobra.Command{
		Use:   "graphic",
		Short: "Generate images and store them as graphics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				graphics, err := service.NewContentGenerator(a.store, a.aiClient(), a.logger).GenerateGraphic(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(graphics)
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Graphic title")
	cmd.Flags().StringVar(&req.Prompt, "prompt", "", "Image prompt")
	cmd.Flags().StringVar(&req.Style, "style", "", "Visual style")
	cmd.Flags().StringVar(&req.Resolution, "resolution", "", "Resolution, e.g. 1024x1024")
	cmd.Flags().StringVar(&req.ContentID, "content", "", "Content item the graphic belongs to")
	cmd.Flags().IntVarP(&req.Count, "count", "n", 1, "Number of images")
	cmd.Flags().StringVar(&req.Provider, "provider", "", "Provider override (openai, gemini)")
	cmd.Flags().StringVar(&req.Model, "model", "", "Image model override")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
