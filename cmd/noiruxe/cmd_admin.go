package main

import (
	"bufio"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/model"
	"noiruxe.app/translation/binding"
	"noiruxe.app/translation/lang"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage portfolio content on the REST backend",
	Long: `Lists, creates, edits, deletes and uploads portfolio records.

Resources: skills, projects, experience, education, hobbies, resumes,
testimonials, messages. Requests carry NOIRUXE_TOKEN as bearer token.`,
}

var adminListCmd = &cobra.Command{
	Use:   "list [resource]",
	Short: "List the records of a resource in backend order",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminList,
}

var adminSaveCmd = &cobra.Command{
	Use:   "save [resource]",
	Short: "Create a record, or edit one with --id",
	Long: `Fills the resource form with --set values and saves it. Empty French
fields are translated from their English counterpart before saving.

Example:
  noiruxe admin save skills --set name_en=Go --set category=backend`,
	Args: cobra.ExactArgs(1),
	RunE: runAdminSave,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete [resource] [id]",
	Short: "Delete a record after confirmation",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminDelete,
}

var adminUploadCmd = &cobra.Command{
	Use:   "upload [resource] [field] [file...]",
	Short: "Upload files for a file field and print the new field value",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runAdminUpload,
}

func parseResource(s string) (model.ResourceType, error) {
	rt, ok := model.ParseResourceType(s)
	if !ok {
		return "", fmt.Errorf("unknown resource %q", s)
	}
	return rt, nil
}

// label picks the field shown for each record in listings.
func label(schema model.Schema) (name string, bilingual bool) {
	if pairs := schema.Pairs(); len(pairs) > 0 {
		return pairs[0].Base, true
	}
	for _, f := range schema.Fields {
		if f.Kind == model.KindText {
			return f.Name, false
		}
	}
	return "id", false
}

func runAdminList(cmd *cobra.Command, args []string) error {
	rt, err := parseResource(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	display := a.preference.Load(ctx)
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		code, ok := lang.Parse(v)
		if !ok {
			return fmt.Errorf("unsupported language %q", v)
		}
		display = code
	}

	items, err := a.adminBusiness().List(ctx, rt)
	if err != nil {
		return err
	}
	schema, _ := model.SchemaFor(rt)
	field, bilingual := label(schema)
	out := cmd.OutOrStdout()
	for _, rec := range items {
		text := rec.Text(field)
		if bilingual {
			text = binding.ResolveField(ctx, a.cache, rec, field, display)
		}
		fmt.Fprintf(out, "%s\t%s\n", rec.ID(), text)
	}
	logger.Debug("listed records", zap.String("resource", string(rt)), zap.Int("count", len(items)))
	return nil
}

func splitAssignment(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("expected name=value, got %q", s)
	}
	return strings.TrimSpace(name), value, nil
}

func readUpload(path string) (backend.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return backend.File{}, fmt.Errorf("read %s: %w", path, err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return backend.File{Name: filepath.Base(path), ContentType: contentType, Data: data}, nil
}

func runAdminSave(cmd *cobra.Command, args []string) error {
	rt, err := parseResource(args[0])
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")
	sets, _ := cmd.Flags().GetStringArray("set")
	files, _ := cmd.Flags().GetStringArray("file")

	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := admin.NewSession(a.adminBusiness(), rt)
	if err != nil {
		return err
	}
	if err := openForm(ctx, sess, id); err != nil {
		return err
	}

	setField := sess.FieldHandler()
	for _, s := range sets {
		name, value, err := splitAssignment(s)
		if err != nil {
			return err
		}
		setField(name, value)
	}
	for _, f := range files {
		field, path, err := splitAssignment(f)
		if err != nil {
			return err
		}
		file, err := readUpload(path)
		if err != nil {
			return err
		}
		if err := sess.Upload(ctx, field, []backend.File{file}); err != nil {
			return fmt.Errorf("upload %s: %w", path, err)
		}
		for _, ue := range sess.UploadErrors() {
			fmt.Fprintf(cmd.ErrOrStderr(), "upload failed: %s: %s\n", ue.File, ue.Message)
		}
	}

	if err := sess.Save(ctx); err != nil {
		return fmt.Errorf("save %s: %s", rt.Singular(), sess.Error())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s, %d %s listed\n", rt.Singular(), len(sess.Items()), rt)
	return nil
}

// openForm opens an empty form, or the form of record id.
func openForm(ctx context.Context, sess *admin.Session, id string) error {
	if id == "" {
		return sess.Add()
	}
	if err := sess.Load(ctx); err != nil {
		return err
	}
	for _, rec := range sess.Items() {
		if rec.ID() == id {
			return sess.Edit(rec)
		}
	}
	return fmt.Errorf("no %s with id %s", sess.Resource().Singular(), id)
}

func confirmed(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func runAdminDelete(cmd *cobra.Command, args []string) error {
	rt, err := parseResource(args[0])
	if err != nil {
		return err
	}
	id := args[1]
	yes, _ := cmd.Flags().GetBool("yes")

	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := admin.NewSession(a.adminBusiness(), rt)
	if err != nil {
		return err
	}
	sess.RequestDelete(id)
	if !yes && !confirmed(cmd, fmt.Sprintf("Delete %s %s? [y/N] ", rt.Singular(), id)) {
		sess.CancelDelete()
		fmt.Fprintln(cmd.OutOrStdout(), "aborted")
		return nil
	}
	if err := sess.ConfirmDelete(ctx); err != nil {
		return fmt.Errorf("delete %s: %s", rt.Singular(), sess.Alert())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s, %d %s listed\n", rt.Singular(), id, len(sess.Items()), rt)
	return nil
}

func runAdminUpload(cmd *cobra.Command, args []string) error {
	rt, err := parseResource(args[0])
	if err != nil {
		return err
	}
	current, _ := cmd.Flags().GetString("current")

	files := make([]backend.File, 0, len(args)-2)
	for _, path := range args[2:] {
		f, err := readUpload(path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.adminBusiness().Upload(ctx, &admin.UploadRequest{
		Resource: rt,
		Field:    args[1],
		Current:  current,
		Files:    files,
	})
	if err != nil {
		return err
	}
	for _, ue := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "upload failed: %s: %s\n", ue.File, ue.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Value)
	if len(result.Errors) == len(files) {
		return fmt.Errorf("no file uploaded")
	}
	return nil
}
