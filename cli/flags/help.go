package flags

const HelpText = `Usage: gbackup [--source_directory DIR] [--destination_directory DIR] [--ignore_file FILE] [--key_file FILE] [--help|-h]

Creates a compressed, timestamped backup of a directory.
Files can be left out of the backup by listing patterns in an ignore file. When no
ignore file is given, a .gbackignore file at the root of the source directory is
used if there is one.

Options:
   --source_directory DIR       Directory to back up. Defaults to your home directory.
   --destination_directory DIR  Directory the backup is written to. Defaults to ~/Documents/Backups.
   --ignore_file FILE           File listing patterns to exclude, one per line.
   --key_file FILE              File holding the passphrase used to encrypt the backup with gpg.
                                The backup is not encrypted when omitted.
   --help, -h                   Prints this help message.

Environment:
   GBACKUP_DEBUG                Enables debug logs.
   GBACKUP_EXCLUSION_MODE       "delegate" (default) passes the ignore file to tar,
                                "filter" applies the patterns before archiving.

Examples:
   # Back up your home directory and encrypt it
   gbackup --source_directory ~ --destination_directory ~/Documents/Backups --key_file ~/.gbackup-key

   # With the defaults, this is the same
   gbackup --key_file ~/.gbackup-key
`
